package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table construction errors. They are programming errors surfaced at init,
// never at request time.
var (
	ErrDuplicateKey     = errors.New("duplicate table key")
	ErrInvalidKey       = errors.New("table key must be a single character")
	ErrEmptyReplacement = errors.New("empty replacement")
	ErrPairMismatch     = errors.New("source and replacement lists differ in length")
	ErrEmptyTable       = errors.New("table has no entries")
)

// Table is an immutable mapping from a source rune to its replacement.
// A replacement is usually one rune but may be a short fixed string.
type Table struct {
	m        map[rune]string
	oneToOne bool
}

// Apply returns s with every mapped rune replaced. Unmapped runes and
// invalid UTF-8 bytes are copied through unchanged.
func (t *Table) Apply(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if repl, ok := t.lookup(r, size); ok {
			b.WriteString(repl)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}

	return b.String()
}

// lookup skips the map for invalid encodings so a stray byte is never
// mistaken for U+FFFD.
func (t *Table) lookup(r rune, size int) (string, bool) {
	if r == utf8.RuneError && size <= 1 {
		return "", false
	}
	repl, ok := t.m[r]
	return repl, ok
}

// Lookup returns the replacement for r, if the table has one.
func (t *Table) Lookup(r rune) (string, bool) {
	repl, ok := t.m[r]
	return repl, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.m)
}

// Keys returns the mapped runes in ascending order.
func (t *Table) Keys() []rune {
	keys := make([]rune, 0, len(t.m))
	for r := range t.m {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// OneToOne reports whether every replacement is exactly one rune, in which
// case Apply preserves the rune count of its input.
func (t *Table) OneToOne() bool {
	return t.oneToOne
}

// Builder accumulates table entries. The first error sticks: later calls
// are ignored and Table reports it.
type Builder struct {
	m   map[rune]string
	err error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{m: make(map[rune]string)}
}

// Set maps r to repl.
func (b *Builder) Set(r rune, repl string) *Builder {
	if b.err != nil {
		return b
	}
	if repl == "" {
		b.err = fmt.Errorf("%w for %q", ErrEmptyReplacement, r)
		return b
	}
	if _, exists := b.m[r]; exists {
		b.err = fmt.Errorf("%w: %q", ErrDuplicateKey, r)
		return b
	}
	b.m[r] = repl
	return b
}

// SetString maps a one-character key to repl.
func (b *Builder) SetString(key, repl string) *Builder {
	if b.err != nil {
		return b
	}
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || (r == utf8.RuneError && size == 1) {
		b.err = fmt.Errorf("%w: %q", ErrInvalidKey, key)
		return b
	}
	return b.Set(r, repl)
}

// Runes maps the i-th rune of from to the i-th rune of to.
func (b *Builder) Runes(from, to string) *Builder {
	if b.err != nil {
		return b
	}
	src, dst := []rune(from), []rune(to)
	if len(src) != len(dst) {
		b.err = fmt.Errorf("%w: %d source runes, %d replacements", ErrPairMismatch, len(src), len(dst))
		return b
	}
	for i, r := range src {
		b.Set(r, string(dst[i]))
	}
	return b
}

// Words maps whitespace-separated keys to whitespace-separated
// replacements, which lets a replacement span several runes.
func (b *Builder) Words(from, to string) *Builder {
	if b.err != nil {
		return b
	}
	src, dst := strings.Fields(from), strings.Fields(to)
	if len(src) != len(dst) {
		b.err = fmt.Errorf("%w: %d keys, %d replacements", ErrPairMismatch, len(src), len(dst))
		return b
	}
	for i, key := range src {
		b.SetString(key, dst[i])
	}
	return b
}

// Offset maps the n runes starting at from to the n runes starting at to,
// except where holes names a replacement explicitly. Unicode leaves gaps in
// several styled alphabets that are filled by older codepoints elsewhere.
func (b *Builder) Offset(from rune, n int, to rune, holes map[rune]rune) *Builder {
	for i := 0; i < n && b.err == nil; i++ {
		src := from + rune(i)
		if h, ok := holes[src]; ok {
			b.Set(src, string(h))
			continue
		}
		b.Set(src, string(to+rune(i)))
	}
	return b
}

// Func maps each rune in from to fn(r), skipping runes for which ok is
// false.
func (b *Builder) Func(from string, fn func(r rune) (repl string, ok bool)) *Builder {
	for _, r := range from {
		if b.err != nil {
			break
		}
		if repl, ok := fn(r); ok {
			b.Set(r, repl)
		}
	}
	return b
}

// Table freezes the builder into a Table.
func (b *Builder) Table() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.m) == 0 {
		return nil, ErrEmptyTable
	}

	m := make(map[rune]string, len(b.m))
	oneToOne := true
	for r, repl := range b.m {
		m[r] = repl
		if utf8.RuneCountInString(repl) != 1 {
			oneToOne = false
		}
	}

	return &Table{m: m, oneToOne: oneToOne}, nil
}

// MustTable is like b.Table but panics on error. Use it for package-level
// tables where a malformed definition should stop the process at start.
func MustTable(b *Builder) *Table {
	t, err := b.Table()
	if err != nil {
		panic(fmt.Sprintf("style: invalid table: %v", err))
	}
	return t
}
