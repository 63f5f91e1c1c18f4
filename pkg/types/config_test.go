package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", Format: FormatText},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "unknown format returns ErrUnknownFormat",
			config:  Config{Backend: BackendMemory, Format: "xml"},
			wantErr: ErrUnknownFormat,
		},
		{
			name:   "valid memory config",
			config: Config{Backend: "memory", Format: "text"},
		},
		{
			name:   "valid sqlite config with json output",
			config: Config{Backend: "sqlite", Format: "json"},
		},
		{
			name:   "empty format is valid",
			config: Config{Backend: "memory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
