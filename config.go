package linekit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Highlight color for matched lines (red, hi-red, green, yellow, ...)
	Color string `env:"LINEKIT_COLOR,default:hi-red"`

	// Binary sniffing configuration
	SniffLength     int `env:"LINEKIT_SNIFF_LENGTH,default:8192"`
	BinaryThreshold int `env:"LINEKIT_BINARY_THRESHOLD,default:5"`

	// Treat every input as text, disabling the binary refusal
	ForceText bool `env:"LINEKIT_FORCE_TEXT,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
