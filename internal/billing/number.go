package billing

import (
	"fmt"
	"strings"
)

// FormatNumber builds an invoice/bill number:
// [counter]-[customerId]-[fromMMDD]-[untilMMDD].
func FormatNumber(counter, customerID, fromDate, untilDate string) (string, error) {
	from, err := formatDate(fromDate)
	if err != nil {
		return "", fmt.Errorf("invalid from date: %w", err)
	}
	until, err := formatDate(untilDate)
	if err != nil {
		return "", fmt.Errorf("invalid until date: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s-%s", counter, customerID, from, until), nil
}

// formatDate reduces an MM/DD/YYYY date to MMDD: the year segment after the
// last slash is dropped, then the remaining slashes are stripped.
func formatDate(date string) (string, error) {
	if date == "" {
		return "", fmt.Errorf("date is required")
	}

	part := date
	if idx := strings.LastIndex(date, "/"); idx != -1 {
		part = date[:idx]
	}
	formatted := strings.ReplaceAll(part, "/", "")

	if len(formatted) != 4 {
		return "", fmt.Errorf("expected MMDD, got %q from %q", formatted, date)
	}
	return formatted, nil
}
