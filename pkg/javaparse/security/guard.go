package security

import (
	"time"

	"github.com/javalang/javaparse/pkg/javaparse/errors"
)

// Guard enforces a Config's bounds during a single parse. It is not
// safe for concurrent use — each Parse/Reparse call owns its own Guard,
// mirroring the per-call *Parser state in pkg/mpl/parser.
type Guard struct {
	cfg Config
	deadline time.Time
	consumed int // token consumptions since the last deadline check
	depth int
	maxDepth int
}

// NewGuard starts the wall-clock budget at call time.
func NewGuard(cfg Config) *Guard {
	return &Guard{
		cfg: cfg,
		deadline: time.Now().Add(cfg.ParseTimeout),
	}
}

// CheckConsume is called once per token consumed by the parser. Every
// TimeoutCheckEvery-th call re-checks the wall clock against the parse
// deadline, so the cost of time.Now() is amortized across many tokens
// rather than paid on every one.
func (g *Guard) CheckConsume() *errors.Error {
	g.consumed++
	if g.cfg.TimeoutCheckEvery <= 0 || g.consumed%g.cfg.TimeoutCheckEvery != 0 {
		return nil
	}
	return g.checkDeadline()
}

// EnterDepth increments the recursion depth counter on entry to a
// recursive-descent production and reports an error once it exceeds
// MaxRecursionDepth. Callers must pair every successful EnterDepth with
// a deferred ExitDepth.
func (g *Guard) EnterDepth() *errors.Error {
	g.depth++
	if g.depth > g.maxDepthOrDefault() {
		return &errors.Error{
			Type: errors.ErrorTypeParser,
			Message: "recursion depth exceeded",
		}
	}
	// Expression parsing recurses the deepest, so re-check the deadline on
	// every entry rather than waiting for the next consume-counted tick.
	return g.checkDeadline()
}

// ExitDepth undoes a prior EnterDepth.
func (g *Guard) ExitDepth() {
	g.depth--
}

func (g *Guard) maxDepthOrDefault() int {
	if g.cfg.MaxRecursionDepth <= 0 {
		return Default().MaxRecursionDepth
	}
	return g.cfg.MaxRecursionDepth
}

func (g *Guard) checkDeadline() *errors.Error {
	if g.cfg.ParseTimeout <= 0 {
		return nil
	}
	if time.Now().After(g.deadline) {
		return &errors.Error{
			Type: errors.ErrorTypeParser,
			Message: "parse timeout exceeded",
		}
	}
	return nil
}

// CheckTokenCount is called once after lexing completes with the total
// number of tokens produced.
func (g *Guard) CheckTokenCount(count int) *errors.Error {
	if g.cfg.MaxTokenCount > 0 && count > g.cfg.MaxTokenCount {
		return &errors.Error{
			Type: errors.ErrorTypeLexer,
			Message: "token count exceeds configured maximum",
		}
	}
	return nil
}

// CheckSource validates a source buffer's size against the configured
// bounds before any lexing begins.
func (g *Guard) CheckSource(byteLen int, charLen int) *errors.Error {
	if g.cfg.MaxSourceBytes > 0 && int64(byteLen) > g.cfg.MaxSourceBytes {
		return &errors.Error{
			Type: errors.ErrorTypeValidation,
			Message: "source exceeds maximum byte size",
		}
	}
	if g.cfg.MaxSourceChars > 0 && int64(charLen) > g.cfg.MaxSourceChars {
		return &errors.Error{
			Type: errors.ErrorTypeValidation,
			Message: "source exceeds maximum character length",
		}
	}
	return nil
}
