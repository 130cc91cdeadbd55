// Package fonts registers the built-in style tables with the default style
// registry. Import it for its side effects:
//
//	import _ "github.com/JonMunkholm/fancyfont/internal/style/fonts"
//
// Registration order below is the display order of every consumer.
package fonts

import "github.com/JonMunkholm/fancyfont/internal/style"

func init() {
	register(style.Default)
}

// register adds the built-in styles to r in display order.
func register(r *style.Registry) {
	r.Register("typewriter", "Typewriter", Typewriter)
	r.Register("outline", "Outline", Outline)
	r.Register("serif", "Serif Bold", SerifBold)
	r.Register("bold_cool", "Bold Script", BoldScript)
	r.Register("bold_italic", "Bold Italic", BoldItalic)
	r.Register("italic", "Italic", Italic)
	r.Register("sans_serif", "Sans Serif", SansSerif)
	r.Register("sans_serif_bold", "Sans Serif Bold", SansSerifBold)
	r.Register("sans_serif_italic", "Sans Serif Italic", SansSerifItalic)
	r.Register("sans_serif_bold_italic", "Sans Serif Bold Italic", SansSerifBoldItalic)
	r.Register("script", "Script", Script)
	r.Register("script_bold", "Script Bold", ScriptBold)
	r.Register("fraktur", "Fraktur", Fraktur)
	r.Register("fraktur_bold", "Fraktur Bold", FrakturBold)
	r.Register("circled", "Circled", Circled)
	r.Register("circled_negative", "Circled Negative", CircledNegative)
	r.Register("squared", "Squared", Squared)
	r.Register("squared_negative", "Squared Negative", SquaredNegative)
	r.Register("parenthesized", "Parenthesized", Parenthesized)
	r.Register("fullwidth", "Fullwidth", Fullwidth)
	r.Register("small_caps", "Small Caps", SmallCaps)
	r.Register("superscript", "Superscript", Superscript)
	r.Register("subscript", "Subscript", Subscript)
	r.Register("upside_down", "Upside Down", UpsideDown)
	r.Register("mirror", "Mirror", Mirror)
	r.Register("currency", "Currency Style", Currency)
	r.Register("regional_indicator", "Regional Indicator", RegionalIndicator)
}
