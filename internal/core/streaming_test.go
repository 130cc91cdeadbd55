package core

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewInputReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "text with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...),
			expected: "hello",
		},
		{
			name:     "text without BOM",
			input:    []byte("hello"),
			expected: "hello",
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "invalid byte replaced",
			input:    []byte{'a', 0xFF, 'b'},
			expected: "a�b",
		},
		{
			name:     "UTF-16LE with BOM",
			input:    []byte{0xFF, 0xFE, 'h', 0, 'i', 0},
			expected: "hi",
		},
		{
			name:     "multibyte passes through",
			input:    []byte("ᴀʙᴄ 𝚊𝚋𝚌"),
			expected: "ᴀʙᴄ 𝚊𝚋𝚌",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := io.ReadAll(NewInputReader(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

// oneByteReader forces runes to be split across reads.
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

func TestNewInputReader_SplitRunes(t *testing.T) {
	in := strings.Repeat("𝔉𝔯𝔞𝔨", 100)

	result, err := io.ReadAll(NewInputReader(oneByteReader{strings.NewReader(in)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != in {
		t.Error("runes split across reads were not reassembled")
	}
}
