package history

import "time"

// Entry records the outcome of a single parse invocation: enough to
// answer "what failed last night's indexing run" without re-running it.
type Entry struct {
	ID string // uuid supplied by the caller; not the parser's log/span session id
	Path string // source file path, or "" for ParseBytes callers
	Success bool // whether the parse produced a Success result
	DurationMS int64 // wall-clock duration of the parse
	Tokens int // token count (0 on failure)
	Nodes int // node count (0 on failure)
	ErrorMessage string // first error's formatted message, empty on success
	RecordedAt time.Time // when this entry was written
}

// Filter narrows a Query to a subset of entries. Zero-valued fields are
// not applied.
type Filter struct {
	Path string
	Success *bool
	Before *time.Time
	After *time.Time
	Limit int
	Offset int
}
