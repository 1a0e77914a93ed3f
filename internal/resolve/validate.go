package resolve

// ValidationResult reports required-field presence. Only the approval request
// ID is hard-required; everything else degrades to a warning because the
// downstream consumers run their own, more specific required-field checks.
type ValidationResult struct {
	Valid           bool     `json:"valid"`
	MissingRequired []string `json:"missingRequired,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// Validate checks the resolved context for required and useful fields.
func Validate(c *Context) ValidationResult {
	result := ValidationResult{Valid: true}

	if c.ApprovalRequestID == "" {
		result.Valid = false
		result.MissingRequired = append(result.MissingRequired, "approvalRequestId")
	}

	if c.ProjectID == "" {
		result.Warnings = append(result.Warnings, "Project ID not found - may affect data retrieval")
	}
	if c.ConsultantID == "" {
		result.Warnings = append(result.Warnings, "Consultant ID not found - may affect timesheet processing")
	}
	if c.CustomerEmail == "" {
		result.Warnings = append(result.Warnings, "Customer email not found - may affect notifications")
	}

	return result
}
