package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"queue": map[string]any{
			"topicId":    "",
			"bufferSize": 0,
		},
		"dispatch": map[string]any{
			"pacingDelay": "5ms",
		},
		"catalog": map[string]any{
			"path": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "QUEUE_TOPICID", want: "queue.topicId"},
		{envKey: "QUEUE_BUFFERSIZE", want: "queue.bufferSize"},
		{envKey: "DISPATCH_PACINGDELAY", want: "dispatch.pacingDelay"},
		{envKey: "CATALOG_PATH", want: "catalog.path"},
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
