package fonts

import (
	"unicode"

	"github.com/JonMunkholm/fancyfont/internal/style"
)

// Enclosed alphanumerics. The negative and squared forms only exist for
// capitals, so lowercase input maps to the same glyphs.
var (
	Circled = style.MustTable(style.NewBuilder().
		Offset('A', 26, 0x24B6, nil).
		Offset('a', 26, 0x24D0, nil).
		Set('0', "⓪").
		Offset('1', 9, 0x2460, nil))

	CircledNegative = style.MustTable(style.NewBuilder().
		Offset('A', 26, 0x1F150, nil).
		Offset('a', 26, 0x1F150, nil).
		Set('0', "⓿").
		Offset('1', 9, 0x2776, nil))

	Squared = style.MustTable(style.NewBuilder().
		Offset('A', 26, 0x1F130, nil).
		Offset('a', 26, 0x1F130, nil))

	SquaredNegative = style.MustTable(style.NewBuilder().
		Offset('A', 26, 0x1F170, nil).
		Offset('a', 26, 0x1F170, nil))

	// Parenthesized has no single-codepoint zero, so 0 becomes "(0)".
	Parenthesized = style.MustTable(style.NewBuilder().
		Offset('A', 26, 0x1F110, nil).
		Offset('a', 26, 0x249C, nil).
		Set('0', "(0)").
		Offset('1', 9, 0x2474, nil))

	RegionalIndicator = style.MustTable(style.NewBuilder().
		Func(latinLetters, regionalIndicator))
)

const latinLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// regionalIndicator follows each indicator symbol with a zero width space;
// two adjacent indicators would otherwise render as a flag.
func regionalIndicator(r rune) (string, bool) {
	l := unicode.ToLower(r)
	if l < 'a' || l > 'z' {
		return "", false
	}
	return string(0x1F1E6+(l-'a')) + "\u200b", true
}
