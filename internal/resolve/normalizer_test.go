package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjps/approvalctl/internal/config"
)

func testNormalizer() *Normalizer {
	return NewNormalizer(&config.Config{ConsultantIDOffset: 3522})
}

func TestSeedParsesLocatorParameters(t *testing.T) {
	ctx, err := testNormalizer().Seed(
		"https://approvals.example.com/respond?project_id=HJP-0042&approval_request_id=REQ-77&customer_email=ops%40acme.com&sales_deal_id=deal-9&approver_is=PrimaryContact",
		Overrides{},
	)
	require.NoError(t, err)

	assert.Equal(t, "HJP-0042", ctx.ProjectID)
	assert.Equal(t, "REQ-77", ctx.ApprovalRequestID)
	assert.Equal(t, "ops@acme.com", ctx.CustomerEmail)
	assert.Equal(t, "deal-9", ctx.SalesDealID)
	assert.Equal(t, "PrimaryContact", ctx.ApproverType)
}

func TestSeedConsultantIDDeobfuscation(t *testing.T) {
	tests := []struct {
		name          string
		consultantID  string
		want          string
		wantEncrypted string
		wantNote      bool
	}{
		{
			name:          "numeric above offset is decrypted",
			consultantID:  "3600",
			want:          "78",
			wantEncrypted: "3600",
			wantNote:      true,
		},
		{
			name:          "numeric below offset is used verbatim",
			consultantID:  "100",
			want:          "100",
			wantEncrypted: "100",
		},
		{
			name:         "non-numeric is used verbatim",
			consultantID: "abc",
			want:         "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := testNormalizer().Seed(
				"https://approvals.example.com/respond?consultant_id="+tt.consultantID,
				Overrides{},
			)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ctx.ConsultantID)
			assert.Equal(t, tt.wantEncrypted, ctx.ConsultantIDEncrypted)
			if tt.wantNote {
				require.Len(t, ctx.SourceNotes, 1)
				assert.Contains(t, ctx.SourceNotes[0], "subtracting offset 3522")
			} else {
				assert.Empty(t, ctx.SourceNotes)
			}
		})
	}
}

func TestSeedManualOverridesWinOverLocator(t *testing.T) {
	ctx, err := testNormalizer().Seed(
		"https://approvals.example.com/respond?project_id=from-url&consultant_id=3600",
		Overrides{ProjectID: "manual-project", ConsultantID: "manual-consultant"},
	)
	require.NoError(t, err)

	assert.Equal(t, "manual-project", ctx.ProjectID)
	assert.Equal(t, "manual-consultant", ctx.ConsultantID)
	// The encrypted form is still retained for audit even though the
	// override won.
	assert.Equal(t, "3600", ctx.ConsultantIDEncrypted)
	assert.Empty(t, ctx.SourceNotes)
}

func TestSeedWithoutLocator(t *testing.T) {
	ctx, err := testNormalizer().Seed("", Overrides{ApprovalRequestID: "REQ-1"})
	require.NoError(t, err)

	assert.Equal(t, "REQ-1", ctx.ApprovalRequestID)
	assert.Empty(t, ctx.ApprovalURL)
}

func TestSeedInvalidLocator(t *testing.T) {
	tests := []struct {
		name    string
		locator string
	}{
		{name: "unparseable", locator: "http://[::1"},
		{name: "relative path", locator: "respond?approval_request_id=REQ-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testNormalizer().Seed(tt.locator, Overrides{})
			var locatorErr *InvalidLocatorError
			require.ErrorAs(t, err, &locatorErr)
			assert.Equal(t, tt.locator, locatorErr.Locator)
		})
	}
}

func TestSeedCustomOffset(t *testing.T) {
	n := NewNormalizer(&config.Config{ConsultantIDOffset: 1000})
	ctx, err := n.Seed("https://approvals.example.com/r?consultant_id=1078", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "78", ctx.ConsultantID)
}
