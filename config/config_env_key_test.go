package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"data": map[string]any{
			"bucketUrl":  "file://./data",
			"backupKeep": 5,
		},
		"export": map[string]any{
			"defaultFileName": "",
		},
		"env": map[string]any{
			"serviceName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATA_BUCKETURL", want: "data.bucketUrl"},
		{envKey: "DATA_BACKUPKEEP", want: "data.backupKeep"},
		{envKey: "EXPORT_DEFAULTFILENAME", want: "export.defaultFileName"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
