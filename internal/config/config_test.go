package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		wantBaseURL string
		wantOffset  int
		wantDebug   bool
	}{
		{
			name: "valid config with all vars",
			envVars: map[string]string{
				"HUBSPOT_PRIVATE_APP_TOKEN":      "test-token",
				"HUBSPOT_BASE_URL":               "https://api.sandbox.hubapi.com",
				"APPROVALCTL_DEBUG":              "true",
				"APPROVAL_CONSULTANT_ID_OFFSET":  "1000",
			},
			wantBaseURL: "https://api.sandbox.hubapi.com",
			wantOffset:  1000,
			wantDebug:   true,
		},
		{
			name: "valid config with only required vars",
			envVars: map[string]string{
				"HUBSPOT_PRIVATE_APP_TOKEN": "test-token",
			},
			wantBaseURL: "https://api.hubapi.com",
			wantOffset:  DefaultConsultantIDOffset,
		},
		{
			name: "legacy bearer token fallback",
			envVars: map[string]string{
				"BEARER_TOKEN": "legacy-token",
			},
			wantBaseURL: "https://api.hubapi.com",
			wantOffset:  DefaultConsultantIDOffset,
		},
		{
			name:    "missing token",
			envVars: map[string]string{},
			wantErr: true,
		},
		{
			name: "invalid offset",
			envVars: map[string]string{
				"HUBSPOT_PRIVATE_APP_TOKEN":     "test-token",
				"APPROVAL_CONSULTANT_ID_OFFSET": "not-a-number",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}

			if cfg.BaseURL != tt.wantBaseURL {
				t.Errorf("Load() BaseURL = %q, want %q", cfg.BaseURL, tt.wantBaseURL)
			}
			if cfg.ConsultantIDOffset != tt.wantOffset {
				t.Errorf("Load() ConsultantIDOffset = %d, want %d", cfg.ConsultantIDOffset, tt.wantOffset)
			}
			if cfg.Debug != tt.wantDebug {
				t.Errorf("Load() Debug = %v, want %v", cfg.Debug, tt.wantDebug)
			}
			if len(cfg.ProjectIDProperties) == 0 {
				t.Error("Load() ProjectIDProperties should have defaults")
			}
		})
	}
}

func TestLoadApproverAssociationTypes(t *testing.T) {
	os.Clearenv()
	os.Setenv("HUBSPOT_PRIVATE_APP_TOKEN", "test-token")
	os.Setenv("HUBSPOT_APPROVER_ASSOCIATION_TYPES", " 5, 12 ,,19")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"5", "12", "19"}
	if len(cfg.ApproverAssociationTypes) != len(want) {
		t.Fatalf("ApproverAssociationTypes = %v, want %v", cfg.ApproverAssociationTypes, want)
	}
	for i, id := range want {
		if cfg.ApproverAssociationTypes[i] != id {
			t.Errorf("ApproverAssociationTypes[%d] = %q, want %q", i, cfg.ApproverAssociationTypes[i], id)
		}
	}
}
