package style

import "golang.org/x/text/unicode/norm"

// Plain folds styled text back towards plain characters using NFKC.
// Mathematical alphanumerics, circled, squared and fullwidth forms carry
// compatibility decompositions and fold cleanly; small caps, upside-down,
// mirrored and currency look-alikes have none and pass through.
func Plain(s string) string {
	return norm.NFKC.String(s)
}
