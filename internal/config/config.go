package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default custom-object type IDs for the production portal.
const (
	DefaultApprovalObjectType  = "2-26103010"
	DefaultTimesheetObjectType = "2-26173281"
	DefaultProjectObjectType   = "2-26102958"
)

// DefaultConsultantIDOffset is subtracted from numeric consultant IDs embedded
// in externally-shared approval URLs to recover the real contact ID.
const DefaultConsultantIDOffset = 3522

type Config struct {
	Token   string
	BaseURL string
	Debug   bool

	ApprovalObjectType  string
	TimesheetObjectType string
	ProjectObjectType   string

	// ConsultantIDOffset reverses the obfuscation applied to consultant IDs
	// in shared approval links.
	ConsultantIDOffset int

	// ApproverAssociationTypes lists deal-to-contact association type IDs
	// that mark a contact as the designated approver, in addition to the
	// "approver" label.
	ApproverAssociationTypes []string

	// ProjectIDProperties are the secondary-index properties tried, in order,
	// when a project cannot be found by its record ID.
	ProjectIDProperties []string
}

func Load() (*Config, error) {
	token := os.Getenv("HUBSPOT_PRIVATE_APP_TOKEN")
	if token == "" {
		token = os.Getenv("BEARER_TOKEN")
	}
	if token == "" {
		fmt.Println("HUBSPOT_PRIVATE_APP_TOKEN environment variable is required")
		fmt.Println("Create a private app token in your HubSpot portal under Settings > Integrations")
		return nil, fmt.Errorf("HUBSPOT_PRIVATE_APP_TOKEN environment variable is required")
	}

	baseURL := os.Getenv("HUBSPOT_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.hubapi.com"
	}

	offset := DefaultConsultantIDOffset
	if raw := os.Getenv("APPROVAL_CONSULTANT_ID_OFFSET"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid APPROVAL_CONSULTANT_ID_OFFSET %q: %w", raw, err)
		}
		offset = parsed
	}

	var approverTypes []string
	if raw := os.Getenv("HUBSPOT_APPROVER_ASSOCIATION_TYPES"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				approverTypes = append(approverTypes, id)
			}
		}
	}

	return &Config{
		Token:                    token,
		BaseURL:                  baseURL,
		Debug:                    os.Getenv("APPROVALCTL_DEBUG") == "true",
		ApprovalObjectType:       envOrDefault("HUBSPOT_APPROVAL_OBJECT_TYPE_ID", DefaultApprovalObjectType),
		TimesheetObjectType:      envOrDefault("HUBSPOT_TIMESHEET_OBJECT_TYPE_ID", DefaultTimesheetObjectType),
		ProjectObjectType:        envOrDefault("HUBSPOT_PROJECT_OBJECT_TYPE_ID", DefaultProjectObjectType),
		ConsultantIDOffset:       offset,
		ApproverAssociationTypes: approverTypes,
		ProjectIDProperties:      []string{"hj_project_id", "project_unique_id"},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
