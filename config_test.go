package linekit

import (
	"os"
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				Color:           "hi-red",
				SniffLength:     8192,
				BinaryThreshold: 5,
			},
		},
		{
			name: "custom color",
			envVars: map[string]string{
				"BEAVER_LINEKIT_COLOR": "green",
			},
			want: Config{
				Color:           "green",
				SniffLength:     8192,
				BinaryThreshold: 5,
			},
		},
		{
			name: "sniffing configuration",
			envVars: map[string]string{
				"BEAVER_LINEKIT_SNIFF_LENGTH":     "255",
				"BEAVER_LINEKIT_BINARY_THRESHOLD": "10",
			},
			want: Config{
				Color:           "hi-red",
				SniffLength:     255,
				BinaryThreshold: 10,
			},
		},
		{
			name: "force text",
			envVars: map[string]string{
				"BEAVER_LINEKIT_FORCE_TEXT": "true",
			},
			want: Config{
				Color:           "hi-red",
				SniffLength:     8192,
				BinaryThreshold: 5,
				ForceText:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			// Compare configs
			if cfg.Color != tt.want.Color {
				t.Errorf("Color = %v, want %v", cfg.Color, tt.want.Color)
			}
			if cfg.SniffLength != tt.want.SniffLength {
				t.Errorf("SniffLength = %v, want %v", cfg.SniffLength, tt.want.SniffLength)
			}
			if cfg.BinaryThreshold != tt.want.BinaryThreshold {
				t.Errorf("BinaryThreshold = %v, want %v", cfg.BinaryThreshold, tt.want.BinaryThreshold)
			}
			if cfg.ForceText != tt.want.ForceText {
				t.Errorf("ForceText = %v, want %v", cfg.ForceText, tt.want.ForceText)
			}
		})
	}
}

func TestWithConfig(t *testing.T) {
	opts := Options{
		Color:           DefaultColor,
		SniffLength:     DefaultSniffLength,
		BinaryThreshold: DefaultBinaryThreshold,
	}

	WithConfig(&Config{Color: "cyan", SniffLength: 512})(&opts)

	if opts.Color != "cyan" {
		t.Errorf("Color = %v, want cyan", opts.Color)
	}
	if opts.SniffLength != 512 {
		t.Errorf("SniffLength = %v, want 512", opts.SniffLength)
	}
	// Zero values in the config must not clobber defaults
	if opts.BinaryThreshold != DefaultBinaryThreshold {
		t.Errorf("BinaryThreshold = %v, want %v", opts.BinaryThreshold, DefaultBinaryThreshold)
	}

	// A nil config is a no-op
	WithConfig(nil)(&opts)
	if opts.Color != "cyan" {
		t.Errorf("Color = %v after nil config, want cyan", opts.Color)
	}
}
