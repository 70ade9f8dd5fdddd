package linekit

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for a scan
type Options struct {
	// IgnoreCase makes pattern matching case-insensitive
	IgnoreCase bool

	// ForceText treats the input as text even if it looks binary
	ForceText bool

	// Color is the highlight color for matched lines
	Color string

	// SniffLength bounds how many bytes the binary check may consume
	SniffLength int

	// BinaryThreshold is the number of binary-class bytes tolerated in the
	// sniffed prefix before the stream is classified binary
	BinaryThreshold int
}

// WithIgnoreCase enables or disables case-insensitive matching
func WithIgnoreCase(ignoreCase bool) Option {
	return func(o *Options) {
		o.IgnoreCase = ignoreCase
	}
}

// WithForceText disables the binary refusal for this scan
func WithForceText(forceText bool) Option {
	return func(o *Options) {
		o.ForceText = forceText
	}
}

// WithColor sets the highlight color by name (red, hi-red, green, ...)
func WithColor(name string) Option {
	return func(o *Options) {
		o.Color = name
	}
}

// WithSniffLength sets how many bytes the binary check may consume
func WithSniffLength(n int) Option {
	return func(o *Options) {
		o.SniffLength = n
	}
}

// WithBinaryThreshold sets how many binary-class bytes the sniffed prefix
// may contain before the stream is classified binary
func WithBinaryThreshold(n int) Option {
	return func(o *Options) {
		o.BinaryThreshold = n
	}
}

// WithConfig applies ambient defaults from a Config, typically loaded from
// the environment with GetConfig
func WithConfig(cfg *Config) Option {
	return func(o *Options) {
		if cfg == nil {
			return
		}
		if cfg.Color != "" {
			o.Color = cfg.Color
		}
		if cfg.SniffLength > 0 {
			o.SniffLength = cfg.SniffLength
		}
		if cfg.BinaryThreshold > 0 {
			o.BinaryThreshold = cfg.BinaryThreshold
		}
		if cfg.ForceText {
			o.ForceText = true
		}
	}
}
