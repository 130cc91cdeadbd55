package core

import (
	"context"
	"strings"
	"testing"

	"github.com/JonMunkholm/fancyfont/internal/style"
	_ "github.com/JonMunkholm/fancyfont/internal/style/fonts"
)

// BenchmarkConvert runs a typical form submission through all built-in
// styles.
func BenchmarkConvert(b *testing.B) {
	svc := NewService(style.Default, nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Convert(ctx, "Hello, World! 123"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConvert_MaxInput benchmarks the longest accepted input.
func BenchmarkConvert_MaxInput(b *testing.B) {
	svc := NewService(style.Default, nil)
	ctx := context.Background()
	text := strings.Repeat("abcdefghij", DefaultMaxInputLength/10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Convert(ctx, text); err != nil {
			b.Fatal(err)
		}
	}
}

func TestConvert_BuiltinStyles(t *testing.T) {
	conv, err := NewService(style.Default, nil).Convert(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	// Every built-in style maps lowercase latin letters.
	if got, want := len(conv.Results), style.Count(); got != want {
		t.Errorf("len(Results) = %d, want %d", got, want)
	}
	if conv.Results[0].ID != "typewriter" || conv.Results[0].Text != "𝚊𝚋𝚌" {
		t.Errorf("first result = %+v, want typewriter 𝚊𝚋𝚌", conv.Results[0])
	}

	conv, err = NewService(style.Default, nil).Convert(context.Background(), "😀")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(conv.Results) != 0 {
		t.Errorf("emoji-only input should produce no results, got %d", len(conv.Results))
	}
}
