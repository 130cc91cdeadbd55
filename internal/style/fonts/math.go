package fonts

import "github.com/JonMunkholm/fancyfont/internal/style"

// Styles from the Mathematical Alphanumeric Symbols block (U+1D400).
// Each alphabet is contiguous apart from letters that were encoded earlier
// in Letterlike Symbols; those holes are listed per style.
var (
	Typewriter = alphanumeric(0x1D670, 0x1D68A, 0x1D7F6, nil)

	Outline = alphanumeric(0x1D538, 0x1D552, 0x1D7D8, map[rune]rune{
		'C': 'ℂ',
		'H': 'ℍ',
		'N': 'ℕ',
		'P': 'ℙ',
		'Q': 'ℚ',
		'R': 'ℝ',
		'Z': 'ℤ',
	})

	SerifBold  = alphanumeric(0x1D400, 0x1D41A, 0x1D7CE, nil)
	BoldScript = alphanumeric(0x1D4D0, 0x1D4EA, 0, nil)
	BoldItalic = alphanumeric(0x1D468, 0x1D482, 0, nil)

	Italic = alphanumeric(0x1D434, 0x1D44E, 0, map[rune]rune{
		'h': 'ℎ',
	})

	SansSerif           = alphanumeric(0x1D5A0, 0x1D5BA, 0x1D7E2, nil)
	SansSerifBold       = alphanumeric(0x1D5D4, 0x1D5EE, 0x1D7EC, nil)
	SansSerifItalic     = alphanumeric(0x1D608, 0x1D622, 0, nil)
	SansSerifBoldItalic = alphanumeric(0x1D63C, 0x1D656, 0, nil)

	Script = alphanumeric(0x1D49C, 0x1D4B6, 0, map[rune]rune{
		'B': 'ℬ',
		'E': 'ℰ',
		'F': 'ℱ',
		'H': 'ℋ',
		'I': 'ℐ',
		'L': 'ℒ',
		'M': 'ℳ',
		'R': 'ℛ',
		'e': 'ℯ',
		'g': 'ℊ',
		'o': 'ℴ',
	})

	// ScriptBold pairs the bold script alphabet with bold digits.
	ScriptBold = alphanumeric(0x1D4D0, 0x1D4EA, 0x1D7CE, nil)

	Fraktur = alphanumeric(0x1D504, 0x1D51E, 0, map[rune]rune{
		'C': 'ℭ',
		'H': 'ℌ',
		'I': 'ℑ',
		'R': 'ℜ',
		'Z': 'ℨ',
	})

	FrakturBold = alphanumeric(0x1D56C, 0x1D586, 0, nil)
)

// alphanumeric builds a table from the first codepoint of an uppercase
// run, a lowercase run and a digit run. A zero digits leaves digits
// unmapped; the block has no italic or script digits.
func alphanumeric(upper, lower, digits rune, holes map[rune]rune) *style.Table {
	b := style.NewBuilder().
		Offset('A', 26, upper, holes).
		Offset('a', 26, lower, holes)
	if digits != 0 {
		b.Offset('0', 10, digits, holes)
	}
	return style.MustTable(b)
}
