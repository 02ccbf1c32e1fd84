package rxdfa

// Config bounds a subset construction's compile-time resource usage.
type Config struct {
	// MaxStates caps the number of DFA states subset construction may
	// produce. Compilation fails with ErrTooComplex the moment adding a
	// new state would exceed it.
	MaxStates uint32
}

// DefaultConfig returns the default compile bound: 10,000 states.
func DefaultConfig() Config {
	return Config{MaxStates: 10_000}
}
