package model

// Config selects which passes the pipeline runs and their sub-behaviors.
type Config struct {
	// Verbose makes the orchestrator print a trace line naming each pass
	// right before it runs. Observability only, no behavioral effect.
	Verbose bool       `toml:"verbose"`
	Passes  PassConfig `toml:"passes"`
}

// PassConfig holds per-pass settings plus an optional explicit schedule.
type PassConfig struct {
	// Order lists pass names in execution order. A name may appear twice when
	// a later slot should rerun a pass after earlier rewrites expose new
	// opportunities; repetition is a fixed scheduling decision, not automatic
	// iteration. Empty means the default schedule.
	Order []string `toml:"order"`

	LiteralArrays LiteralArrayConfig `toml:"literal-arrays"`
}

// LiteralArrayConfig configures the literal-array inlining pass.
type LiteralArrayConfig struct {
	Enabled bool `toml:"enabled"`
	// Cleanup removes declarations whose arrays had at least one access
	// inlined. Declarations with zero inlined uses always stay.
	Cleanup bool `toml:"cleanup"`
}

// DefaultConfig is the pipeline setup used when no configuration file is
// given: the literal-array pass with cleanup, quiet output.
func DefaultConfig() Config {
	return Config{
		Passes: PassConfig{
			LiteralArrays: LiteralArrayConfig{Enabled: true, Cleanup: true},
		},
	}
}
