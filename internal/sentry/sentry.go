package sentry

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration
type Config struct {
	DSN         string
	Environment string
	Release     string
	SampleRate  float64
	Debug       bool
}

// Initialize sets up Sentry if DSN is provided
func Initialize(version string) error {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		// Sentry not configured, skip initialization
		return nil
	}

	environment := os.Getenv("SENTRY_ENVIRONMENT")
	if environment == "" {
		environment = "production"
	}

	sampleRate := 1.0
	if rate := os.Getenv("SENTRY_TRACES_SAMPLE_RATE"); rate != "" {
		fmt.Sscanf(rate, "%f", &sampleRate)
	}

	debug := os.Getenv("SENTRY_DEBUG") == "true"

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          version,
		TracesSampleRate: sampleRate,
		Debug:            debug,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// Add custom data
			event.Extra["record_store_url"] = os.Getenv("HUBSPOT_BASE_URL")
			return event
		},
	})

	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	return nil
}

// Flush waits for all events to be sent
func Flush(timeout time.Duration) {
	if sentry.CurrentHub().Client() != nil {
		sentry.Flush(timeout)
	}
}

// AddBreadcrumb records a breadcrumb on the current scope
func AddBreadcrumb(category, message string) {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category:  category,
		Message:   message,
		Level:     sentry.LevelInfo,
		Timestamp: time.Now(),
	})
}

// CaptureError captures an error with additional context
func CaptureError(err error, tags map[string]string, extras map[string]interface{}) {
	if sentry.CurrentHub().Client() == nil || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		for k, v := range extras {
			scope.SetExtra(k, v)
		}
		sentry.CaptureException(err)
	})
}

// RecoverWithSentry recovers from panic and reports to Sentry
func RecoverWithSentry(ctx context.Context, extras map[string]interface{}) {
	if err := recover(); err != nil {
		if sentry.CurrentHub().Client() != nil {
			sentry.WithScope(func(scope *sentry.Scope) {
				for k, v := range extras {
					scope.SetExtra(k, v)
				}
				sentry.CurrentHub().RecoverWithContext(ctx, err)
			})
		}
		// Re-panic after reporting
		panic(err)
	}
}
