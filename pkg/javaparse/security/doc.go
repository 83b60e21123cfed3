// Package security implements the resource bounds that keep a pathological
// or adversarial input from consuming unbounded time, memory or stack
// depth.
//
// Config carries the limits; Guard enforces them over the lifetime of a
// single parse. A parser creates one Guard per call to Parse/ParseBytes/
// Reparse, calls CheckSource once up front, CheckConsume on every token
// it consumes, EnterDepth/ExitDepth around every recursive production,
// and CheckTokenCount once lexing finishes.
package security
