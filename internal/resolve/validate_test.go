package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMissingRequestID(t *testing.T) {
	result := Validate(&Context{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"approvalRequestId"}, result.MissingRequired)
}

func TestValidateRequestIDOnly(t *testing.T) {
	result := Validate(&Context{ApprovalRequestID: "REQ-77"})

	assert.True(t, result.Valid)
	assert.Empty(t, result.MissingRequired)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateCompleteContext(t *testing.T) {
	result := Validate(&Context{
		ApprovalRequestID: "REQ-77",
		ProjectID:         "HJP-0042",
		ConsultantID:      "78",
		CustomerEmail:     "ops@acme.com",
	})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}
