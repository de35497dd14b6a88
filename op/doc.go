// Package op implements the eager algorithms of SPEC_FULL.md §7: every
// function here drives a Sequence to completion and returns a plain Go
// value, as opposed to package adaptor's lazy, Sequence-returning
// transforms. Most are thin specialisations of seq.ForEachWhile, the
// bulk driver every one of them shares.
package op
