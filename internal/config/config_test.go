// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"testing"
)

func TestNewCarriesDevice(t *testing.T) {
	cfg := New("/dev/video10")
	if cfg.Device != "/dev/video10" {
		t.Errorf("Device = %q, want %q", cfg.Device, "/dev/video10")
	}
	if New("").Device != "" {
		t.Error("empty device argument must stay empty")
	}
}

func TestNewDebugToggle(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		envSet   bool
		want     bool
	}{
		{
			name:     "literal one enables debug",
			envValue: "1",
			envSet:   true,
			want:     true,
		},
		{
			name:   "unset disables debug",
			envSet: false,
			want:   false,
		},
		{
			name:     "empty string disables debug",
			envValue: "",
			envSet:   true,
			want:     false,
		},
		{
			name:     "true is not the literal one",
			envValue: "true",
			envSet:   true,
			want:     false,
		},
		{
			name:     "zero disables debug",
			envValue: "0",
			envSet:   true,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(DebugEnv, tt.envValue)
			} else {
				t.Setenv(DebugEnv, "") // register restore, then clear
				os.Unsetenv(DebugEnv)
			}
			if got := New("").Debug; got != tt.want {
				t.Errorf("New(\"\").Debug = %v, want %v", got, tt.want)
			}
		})
	}
}
