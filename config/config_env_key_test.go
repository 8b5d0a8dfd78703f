package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mysql": map[string]any{
			"maxOpenConns": 50,
			"connMaxLifetime": "1h",
		},
		"uploads": map[string]any{
			"baseUrl": "",
		},
		"loyalty": map[string]any{
			"cardPrefix": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MYSQL_MAXOPENCONNS", want: "mysql.maxOpenConns"},
		{envKey: "MYSQL_CONNMAXLIFETIME", want: "mysql.connMaxLifetime"},
		{envKey: "UPLOADS_BASEURL", want: "uploads.baseUrl"},
		{envKey: "LOYALTY_CARDPREFIX", want: "loyalty.cardPrefix"},
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
