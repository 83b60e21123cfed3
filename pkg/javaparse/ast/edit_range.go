package ast

// EditRange describes a single text edit applied to a previously parsed
// source: the byte span it replaces and the text it is replaced with
//. It is accepted by Parser.Reparse, whose current
// behavior is a full reparse after arena reset — the type exists so
// that future incremental work does not change the interface.
type EditRange struct {
	StartOffset int // byte offset the edit begins at
	OldLength int // byte length of the replaced span
	NewLength int // byte length of NewText
	NewText string // replacement text
}
