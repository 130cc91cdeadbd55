package style

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func smallCaps(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewBuilder().Runes("abc", "ᴀʙᴄ").Set('0', "(0)").Table()
	require.NoError(t, err)
	return tbl
}

func TestTableApply(t *testing.T) {
	tbl := smallCaps(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"mapped", "abc", "ᴀʙᴄ"},
		{"case sensitive", "ABC", "ABC"},
		{"identity fallback", "a-b c!", "ᴀ-ʙ ᴄ!"},
		{"multi rune replacement", "a0", "ᴀ(0)"},
		{"non latin passes through", "ab😀cé", "ᴀʙ😀ᴄé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.Apply(tt.input))
		})
	}
}

func TestTableApply_InvalidUTF8(t *testing.T) {
	tbl, err := NewBuilder().Set(utf8.RuneError, "?").Set('a', "ᴀ").Table()
	require.NoError(t, err)

	// A stray byte must be copied, not looked up as U+FFFD.
	in := "a\xffa"
	assert.Equal(t, "ᴀ\xffᴀ", tbl.Apply(in))
}

func TestTableAccessors(t *testing.T) {
	tbl := smallCaps(t)

	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, []rune{'0', 'a', 'b', 'c'}, tbl.Keys())
	assert.False(t, tbl.OneToOne())

	repl, ok := tbl.Lookup('b')
	assert.True(t, ok)
	assert.Equal(t, "ʙ", repl)

	_, ok = tbl.Lookup('z')
	assert.False(t, ok)

	one, err := NewBuilder().Runes("ab", "xy").Table()
	require.NoError(t, err)
	assert.True(t, one.OneToOne())
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Builder
		wantErr error
	}{
		{
			name:    "duplicate via Set",
			build:   func() *Builder { return NewBuilder().Set('a', "x").Set('a', "y") },
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "duplicate within Runes",
			build:   func() *Builder { return NewBuilder().Runes("aba", "xyz") },
			wantErr: ErrDuplicateKey,
		},
		{
			name: "duplicate across Offset and Words",
			build: func() *Builder {
				return NewBuilder().Offset('a', 3, 'x', nil).Words("c", "q")
			},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "empty replacement",
			build:   func() *Builder { return NewBuilder().Set('a', "") },
			wantErr: ErrEmptyReplacement,
		},
		{
			name:    "multi character key",
			build:   func() *Builder { return NewBuilder().SetString("ab", "x") },
			wantErr: ErrInvalidKey,
		},
		{
			name:    "empty key",
			build:   func() *Builder { return NewBuilder().SetString("", "x") },
			wantErr: ErrInvalidKey,
		},
		{
			name:    "multi character key in Words",
			build:   func() *Builder { return NewBuilder().Words("a bc", "x y") },
			wantErr: ErrInvalidKey,
		},
		{
			name:    "Runes length mismatch",
			build:   func() *Builder { return NewBuilder().Runes("abc", "xy") },
			wantErr: ErrPairMismatch,
		},
		{
			name:    "Words length mismatch",
			build:   func() *Builder { return NewBuilder().Words("a b", "x") },
			wantErr: ErrPairMismatch,
		},
		{
			name:    "no entries",
			build:   NewBuilder,
			wantErr: ErrEmptyTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Table()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuilderFirstErrorSticks(t *testing.T) {
	b := NewBuilder().Set('a', "x").Set('a', "y").Runes("abc", "x")

	_, err := b.Table()
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NotErrorIs(t, err, ErrPairMismatch)
}

func TestBuilderOffsetHoles(t *testing.T) {
	tbl, err := NewBuilder().Offset('A', 3, 0x1D538, map[rune]rune{'C': 'ℂ'}).Table()
	require.NoError(t, err)

	assert.Equal(t, "𝔸𝔹ℂ", tbl.Apply("ABC"))
}

func TestBuilderFunc(t *testing.T) {
	tbl, err := NewBuilder().Func("abc", func(r rune) (string, bool) {
		if r == 'b' {
			return "", false
		}
		return strings.ToUpper(string(r)), true
	}).Table()
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "AbC", tbl.Apply("abc"))
}

func TestTableIsolatedFromBuilder(t *testing.T) {
	b := NewBuilder().Set('a', "x")
	tbl, err := b.Table()
	require.NoError(t, err)

	b.Set('b', "y")
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, "b", tbl.Apply("b"))
}

func TestMustTablePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustTable(NewBuilder().Set('a', "x").Set('a', "y"))
	})
	assert.NotPanics(t, func() {
		MustTable(NewBuilder().Set('a', "x"))
	})
}

func TestTransformerMatchesApply(t *testing.T) {
	tbl := smallCaps(t)

	inputs := []string{
		"",
		"abc",
		"a0b0c0 and some text with é and 😀",
		strings.Repeat("cab0", 500),
		"a\xffb",
	}

	for _, in := range inputs {
		got, _, err := transform.String(tbl.Transformer(), in)
		require.NoError(t, err)
		assert.Equal(t, tbl.Apply(in), got)
	}
}

func TestTransformerShortBuffers(t *testing.T) {
	tbl := smallCaps(t)
	tr := tbl.Transformer()

	// "é" split across calls must wait for more input.
	dst := make([]byte, 16)
	nDst, nSrc, err := tr.Transform(dst, []byte("a\xc3"), false)
	assert.ErrorIs(t, err, transform.ErrShortSrc)
	assert.Equal(t, 1, nSrc)
	assert.Equal(t, "ᴀ", string(dst[:nDst]))

	// A replacement that does not fit is not split.
	small := make([]byte, 2)
	nDst, nSrc, err = tr.Transform(small, []byte("a"), true)
	assert.ErrorIs(t, err, transform.ErrShortDst)
	assert.Equal(t, 0, nDst)
	assert.Equal(t, 0, nSrc)
}
