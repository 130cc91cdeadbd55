package core

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// NewInputReader wraps r so streamed input is clean UTF-8 before it reaches
// a style. A leading UTF-8 BOM is dropped, UTF-16 input with a BOM is
// decoded, and ill-formed bytes become U+FFFD. Memory use is bounded by
// the transform buffer, not the input size.
func NewInputReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(transform.Nop),
		runes.ReplaceIllFormed(),
	))
}
