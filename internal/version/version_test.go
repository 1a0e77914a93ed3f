package version

import (
	"testing"
)

func TestVersionComparison(t *testing.T) {
	tests := []struct {
		name           string
		currentVersion string
		latestVersion  string
		expectedUpdate bool
	}{
		{
			name:           "Patch update available",
			currentVersion: "v1.6.0",
			latestVersion:  "v1.6.1",
			expectedUpdate: true,
		},
		{
			name:           "Minor update available",
			currentVersion: "v1.6.0",
			latestVersion:  "v1.7.0",
			expectedUpdate: true,
		},
		{
			name:           "Major update available",
			currentVersion: "v1.6.0",
			latestVersion:  "v2.0.0",
			expectedUpdate: true,
		},
		{
			name:           "Double digit minor version",
			currentVersion: "v1.9.0",
			latestVersion:  "v1.10.0",
			expectedUpdate: true,
		},
		{
			name:           "Same version",
			currentVersion: "v1.6.0",
			latestVersion:  "v1.6.0",
			expectedUpdate: false,
		},
		{
			name:           "Older version",
			currentVersion: "v1.7.0",
			latestVersion:  "v1.6.0",
			expectedUpdate: false,
		},
		{
			name:           "Dev version",
			currentVersion: "dev",
			latestVersion:  "v1.6.0",
			expectedUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasUpdate, err := compareVersions(tt.currentVersion, tt.latestVersion)
			if err != nil {
				t.Fatalf("compareVersions failed: %v", err)
			}
			if hasUpdate != tt.expectedUpdate {
				t.Errorf("compareVersions(%s, %s) = %v, expected %v",
					tt.currentVersion, tt.latestVersion, hasUpdate, tt.expectedUpdate)
			}
		})
	}
}

func TestGetUpdateMessage(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	// Dev builds never report an update.
	Version = "dev"
	if msg := GetUpdateMessage(); msg != "" {
		t.Errorf("Expected empty message for dev version, got: %s", msg)
	}
}
