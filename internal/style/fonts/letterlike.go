package fonts

import (
	"strings"

	"github.com/JonMunkholm/fancyfont/internal/style"
)

// Look-alike styles assembled from IPA, phonetic extensions, modifier
// letters and assorted symbols. Unicode has no complete alphabet for any of
// them, so characters without a convincing look-alike stay unmapped.
var (
	// SmallCaps has no small capital x.
	SmallCaps = style.MustTable(style.NewBuilder().Words(
		`a b c d e f g h i j k l m n o p q r s t u v w y z`,
		`ᴀ ʙ ᴄ ᴅ ᴇ ꜰ ɢ ʜ ɪ ᴊ ᴋ ʟ ᴍ ɴ ᴏ ᴘ ǫ ʀ ꜱ ᴛ ᴜ ᴠ ᴡ ʏ ᴢ`,
	))

	Superscript = style.MustTable(style.NewBuilder().Words(
		`0 1 2 3 4 5 6 7 8 9 + - = ( )
		 a b c d e f g h i j k l m n o p r s t u v w x y z
		 A B D E G H I J K L M N O P R T U V W`,
		`⁰ ¹ ² ³ ⁴ ⁵ ⁶ ⁷ ⁸ ⁹ ⁺ ⁻ ⁼ ⁽ ⁾
		 ᵃ ᵇ ᶜ ᵈ ᵉ ᶠ ᵍ ʰ ⁱ ʲ ᵏ ˡ ᵐ ⁿ ᵒ ᵖ ʳ ˢ ᵗ ᵘ ᵛ ʷ ˣ ʸ ᶻ
		 ᴬ ᴮ ᴰ ᴱ ᴳ ᴴ ᴵ ᴶ ᴷ ᴸ ᴹ ᴺ ᴼ ᴾ ᴿ ᵀ ᵁ ⱽ ᵂ`,
	))

	Subscript = style.MustTable(style.NewBuilder().Words(
		`0 1 2 3 4 5 6 7 8 9 + - = ( )
		 a e h i j k l m n o p r s t u v x`,
		`₀ ₁ ₂ ₃ ₄ ₅ ₆ ₇ ₈ ₉ ₊ ₋ ₌ ₍ ₎
		 ₐ ₑ ₕ ᵢ ⱼ ₖ ₗ ₘ ₙ ₒ ₚ ᵣ ₛ ₜ ᵤ ᵥ ₓ`,
	))

	// UpsideDown rotates each character in place; it does not reverse the
	// string. Letters that read the same rotated (l, o, s, x, z, H, I, ...)
	// are left out.
	UpsideDown = style.MustTable(style.NewBuilder().Words(
		`a b c d e f g h i j k m n p q r t u v w y
		 A B C D E F G J L M P Q R T U V W Y
		 1 2 3 4 5 6 7 9
		 , . ! ? ' " ( ) [ ] { } < > & _ ;`,
		`ɐ q ɔ p ǝ ɟ ƃ ɥ ᴉ ɾ ʞ ɯ u d b ɹ ʇ n ʌ ʍ ʎ
		 ∀ 𐐒 Ɔ ᗡ Ǝ Ⅎ ⅁ ſ ˥ W Ԁ Ό ᴚ ┴ ∩ Λ M ⅄
		 Ɩ ᄅ Ɛ ㄣ ϛ 9 ㄥ 6
		 ' ˙ ¡ ¿ , „ ) ( ] [ } { > < ⅋ ‾ ؛`,
	))

	// Mirror flips each character horizontally in place.
	Mirror = style.MustTable(style.NewBuilder().Words(
		`a b c d e f g h j k p q r s t y z
		 B C D E F G J K L N P Q R S Z
		 3 ( ) [ ] { } < > ?`,
		`ɒ d ɔ b ɘ ʇ ϱ ʜ ꞁ ʞ q p ɿ ꙅ ƚ ʏ ƹ
		 ᙠ Ɔ ᗡ Ǝ ꟻ Ꭾ Ⴑ ⋊ ⅃ И ꟼ Ọ Я Ƨ Ƹ
		 Ɛ ) ( ] [ } { > < ⸮`,
	))

	// Currency maps both cases to the same currency-sign look-alikes.
	Currency = style.MustTable(style.NewBuilder().Words(
		currencyLetters+" "+strings.ToLower(currencyLetters),
		currencyGlyphs+" "+currencyGlyphs,
	))
)

const (
	currencyLetters = `A B C D E F G H I K L M N O P R S T U W X Y Z`
	currencyGlyphs  = `₳ ฿ ₵ Đ Ɇ ₣ ₲ Ⱨ ł ₭ Ⱡ ₥ ₦ Ø ₱ Ɽ ₴ ₮ Ʉ ₩ Ӿ Ɏ Ⱬ`
)
