package security

import "time"

// Config holds the process-wide security bounds consulted by the
// validator, lexer and parser. A Config is built once
// with Default and is safe to share across concurrently parsing
// goroutines — it is read-only after construction.
type Config struct {
	MaxSourceBytes int64 // reject input larger than this
	MaxSourceChars int64 // reject decoded text longer than this
	MaxTokenCount int // reject after lexing more tokens than this
	MaxRecursionDepth int // abort parse past this many nested productions
	ParseTimeout time.Duration // abort parse after this wall-clock budget
	TimeoutCheckEvery int // check the deadline every N token consumptions
	DepthCheckEvery int // not read by Guard; EnterDepth checks the deadline on every call
	MetricsEnabled bool
}

// Default returns conservative bounds suitable for parsing untrusted input.
func Default() Config {
	return Config{
		MaxSourceBytes: 50 * 1024 * 1024,
		MaxSourceChars: 10_000_000,
		MaxTokenCount: 5_000_000,
		MaxRecursionDepth: 1000,
		ParseTimeout: 30 * time.Second,
		TimeoutCheckEvery: 100,
		DepthCheckEvery: 1,
		MetricsEnabled: false,
	}
}

// WithMaxSourceBytes returns a copy of c with MaxSourceBytes set.
func (c Config) WithMaxSourceBytes(n int64) Config { c.MaxSourceBytes = n; return c }

// WithMaxRecursionDepth returns a copy of c with MaxRecursionDepth set.
func (c Config) WithMaxRecursionDepth(n int) Config { c.MaxRecursionDepth = n; return c }

// WithParseTimeout returns a copy of c with ParseTimeout set.
func (c Config) WithParseTimeout(d time.Duration) Config { c.ParseTimeout = d; return c }
