package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"pipeline": map[string]any{
			"dedupWindow": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PIPELINE_DEDUPWINDOW", want: "pipeline.dedupWindow"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Store.Provider != "sqlite" {
		t.Fatalf("store provider = %q, want sqlite", cfg.Store.Provider)
	}
	if cfg.Pipeline.DedupWindow != 10*time.Second {
		t.Fatalf("dedup window = %s, want 10s", cfg.Pipeline.DedupWindow)
	}
	if cfg.Pipeline.LookBackLimit != 10 {
		t.Fatalf("look-back limit = %d, want 10", cfg.Pipeline.LookBackLimit)
	}
	if cfg.Watch.ReconnectBackoff != 5*time.Second || cfg.Watch.MaxReconnectBackoff != 30*time.Second {
		t.Fatalf("backoff = %s..%s, want 5s..30s", cfg.Watch.ReconnectBackoff, cfg.Watch.MaxReconnectBackoff)
	}
	if cfg.PubSub.Provider != "noop" || cfg.Claim.Provider != "none" {
		t.Fatalf("providers = %q/%q, want noop/none", cfg.PubSub.Provider, cfg.Claim.Provider)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Pipeline: &PipelineConfig{DedupWindow: 3 * time.Second, LookBackLimit: 25},
		Watch:    &WatchConfig{ReconnectBackoff: time.Minute},
	}
	applyDefaults(cfg)

	if cfg.Pipeline.DedupWindow != 3*time.Second || cfg.Pipeline.LookBackLimit != 25 {
		t.Fatalf("pipeline overridden: %+v", cfg.Pipeline)
	}
	if cfg.Watch.MaxReconnectBackoff != time.Minute {
		t.Fatalf("max backoff = %s, want 1m", cfg.Watch.MaxReconnectBackoff)
	}
}

func TestValidate_DedupWindowResolution(t *testing.T) {
	tests := []struct {
		window  time.Duration
		wantErr bool
	}{
		{window: 500 * time.Microsecond, wantErr: true},
		{window: time.Millisecond, wantErr: false},
		{window: 10 * time.Second, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.window.String(), func(t *testing.T) {
			cfg := &Config{Pipeline: &PipelineConfig{DedupWindow: tt.window}}
			applyDefaults(cfg)

			if err := validate(cfg); (err != nil) != tt.wantErr {
				t.Fatalf("validate(%s) error = %v, wantErr %v", tt.window, err, tt.wantErr)
			}
		})
	}
}
