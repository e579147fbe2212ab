// Package meta orchestrates pattern compilation and matching. It binds
// syntax parsing, NFA construction, the literal prefilter, and the
// backtracking simulation engine behind one Compile entry point, with a
// single execution strategy since backreference support rules out a
// DFA-based one.
package meta

// Config controls compiled-pattern behavior.
type Config struct {
	// EnablePrefilter enables literal-based prefiltering of candidate start
	// positions before the backtracker is invoked.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length a required literal prefix must
	// have to be worth prefiltering on.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals caps the number of top-level alternation branches a
	// prefilter will track; patterns with more branches skip prefiltering
	// rather than building an oversized literal set.
	// Default: 256
	MaxLiterals int

	// MaxBacktrackSteps bounds a single match attempt's step count, guarding
	// against catastrophic backtracking. Zero selects an internal default
	// budget; a positive value makes the budget explicit instead.
	// Default: 0 (internal default)
	MaxBacktrackSteps int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		MinLiteralLen:     1,
		MaxLiterals:       256,
		MaxBacktrackSteps: 0,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{Field: "MinLiteralLen", Message: "must be between 1 and 64"}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
		}
	}
	if c.MaxBacktrackSteps < 0 {
		return &ConfigError{Field: "MaxBacktrackSteps", Message: "must be >= 0"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "ogex: invalid config: " + e.Field + ": " + e.Message
}
