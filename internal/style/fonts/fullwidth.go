package fonts

import (
	"golang.org/x/text/width"

	"github.com/JonMunkholm/fancyfont/internal/style"
)

// printableASCII is U+0020 through U+007E.
const printableASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Fullwidth maps printable ASCII to the Halfwidth and Fullwidth Forms block
// (space becomes U+3000 IDEOGRAPHIC SPACE).
var Fullwidth = style.MustTable(style.NewBuilder().Func(printableASCII, widen))

func widen(r rune) (string, bool) {
	w := width.Widen.String(string(r))
	return w, w != string(r)
}
