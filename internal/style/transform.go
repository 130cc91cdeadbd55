package style

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer that performs Apply over a
// byte stream. It is stateless and may be shared.
func (t *Table) Transformer() transform.Transformer {
	return tableTransformer{t: t}
}

type tableTransformer struct {
	transform.NopResetter
	t *Table
}

func (tt tableTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rest := src[nSrc:]
		if !atEOF && !utf8.FullRune(rest) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		r, size := utf8.DecodeRune(rest)
		out := rest[:size]
		if repl, ok := tt.t.lookup(r, size); ok {
			if nDst+len(repl) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], repl)
			nSrc += size
			continue
		}

		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}
