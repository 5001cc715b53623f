package observe

import (
	"context"
	"strings"
	"testing"
)

// TestConfigValidate covers the validation rules for Config.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string // empty means valid
	}{
		{
			name: "fully valid",
			cfg: Config{
				ServiceName: "isabsolute",
				Version:     "1.0.0",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "stdout"},
				Logging:     LoggingConfig{Enabled: true, Level: "info"},
			},
		},
		{
			name:    "missing service name",
			cfg:     Config{},
			wantErr: "service name",
		},
		{
			name: "unknown tracing exporter",
			cfg: Config{
				ServiceName: "isabsolute",
				Tracing:     TracingConfig{Enabled: true, Exporter: "carrier-pigeon"},
			},
			wantErr: "unknown tracing exporter",
		},
		{
			name: "unknown metrics exporter",
			cfg: Config{
				ServiceName: "isabsolute",
				Metrics:     MetricsConfig{Enabled: true, Exporter: "carrier-pigeon"},
			},
			wantErr: "unknown metrics exporter",
		},
		{
			name: "sample percentage out of range",
			cfg: Config{
				ServiceName: "isabsolute",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.5},
			},
			wantErr: "sample percentage",
		},
		{
			name: "unknown log level",
			cfg: Config{
				ServiceName: "isabsolute",
				Logging:     LoggingConfig{Enabled: true, Level: "loud"},
			},
			wantErr: "unknown log level",
		},
		{
			name: "disabled subsystems skip exporter validation",
			cfg: Config{
				ServiceName: "isabsolute",
				Tracing:     TracingConfig{Enabled: false, Exporter: "carrier-pigeon"},
				Metrics:     MetricsConfig{Enabled: false, Exporter: "carrier-pigeon"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestNewObserver_AllDisabled verifies disabled subsystems come back as
// working no-ops.
func TestNewObserver_AllDisabled(t *testing.T) {
	ctx := context.Background()

	obs, err := NewObserver(ctx, Config{ServiceName: "isabsolute"})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	if obs.Tracer() == nil {
		t.Error("Tracer() should not be nil when tracing is disabled")
	}
	if obs.Meter() == nil {
		t.Error("Meter() should not be nil when metrics are disabled")
	}
	if obs.Logger() == nil {
		t.Error("Logger() should not be nil when logging is disabled")
	}

	// No-op logger must accept calls without panicking.
	obs.Logger().Info(ctx, "noop", Field{Key: "url", Value: "http://example.com"})

	if err := obs.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown on all-noop observer failed: %v", err)
	}
}

// TestNewObserver_InvalidConfig verifies configuration errors surface.
func TestNewObserver_InvalidConfig(t *testing.T) {
	_, err := NewObserver(context.Background(), Config{})
	if err == nil {
		t.Fatal("NewObserver with empty config should fail")
	}
}

// TestNewObserver_ShutdownIdempotent verifies Shutdown can be called twice.
func TestNewObserver_ShutdownIdempotent(t *testing.T) {
	ctx := context.Background()

	obs, err := NewObserver(ctx, Config{
		ServiceName: "isabsolute",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 0},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
	})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	if err := obs.Shutdown(ctx); err != nil {
		t.Errorf("first Shutdown failed: %v", err)
	}
	// The SDK reports ErrReaderShutdown on a second call; we only require
	// that it does not panic.
	_ = obs.Shutdown(ctx)
}
