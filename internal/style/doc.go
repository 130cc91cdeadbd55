// Package style provides the character-mapping engine behind the font
// generator.
//
// A style is a named, fixed substitution table. Applying a style replaces
// every rune that has an entry in the table and leaves every other rune
// untouched, so the mapping is total: it never fails and never drops input.
//
// # Tables
//
// Tables are built once with a [Builder] and are immutable afterwards.
// Construction rejects duplicate keys instead of overwriting them:
//
//	t := style.MustTable(style.NewBuilder().
//	    Runes("abc", "ᴀʙᴄ").
//	    Set('0', "(0)"))
//	t.Apply("cab 0") // "ᴄᴀʙ (0)"
//
// # Registry
//
// Styles are registered at init time, in display order, with [Register].
// The registry order is the order every consumer presents styles in:
//
//	style.Register("small_caps", "Small Caps", t)
//	for _, info := range style.List() {
//	    out, _ := style.Apply(info.ID, text)
//	}
//
// The built-in tables live in the fonts subpackage; import it for its
// side effects to populate the default registry.
//
// # Concurrency
//
// Applying a table reads only immutable data and is safe for concurrent
// use. The registry takes a read lock to resolve an id and nothing else.
package style
