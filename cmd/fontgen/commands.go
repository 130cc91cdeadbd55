package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/fancyfont/internal/core"
	"github.com/JonMunkholm/fancyfont/internal/style"
)

// errNoInput is returned when text is omitted and stdin is a terminal.
var errNoInput = errors.New("no text given; pass it as an argument or pipe it on stdin")

// app holds what the subcommands need, so tests can swap the streams.
type app struct {
	service  *core.Service
	registry *style.Registry
	stdin    io.Reader
	stdout   io.Writer

	// interactive is set when stdin is a terminal and would block.
	interactive bool
}

func (a *app) readStdin() (string, error) {
	if a.interactive {
		return "", errNoInput
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// convert prints text in every applicable style, or in one style. With no
// text and a single style in text format, stdin is streamed through the
// style's transformer so input of any size is handled.
func (a *app) convert(ctx context.Context, text, styleID, format string) error {
	if text == "" && styleID != "" && format == "text" && !a.interactive {
		return a.stream(styleID)
	}

	if text == "" {
		var err error
		if text, err = a.readStdin(); err != nil {
			return err
		}
	}

	if styleID != "" {
		res, err := a.service.ConvertStyle(ctx, styleID, text)
		if err != nil {
			return err
		}
		if format == "text" {
			_, err = fmt.Fprintln(a.stdout, res.Text)
			return err
		}
		return encode(a.stdout, format, res)
	}

	conv, err := a.service.Convert(ctx, text)
	if err != nil {
		return err
	}
	if format != "text" {
		return encode(a.stdout, format, conv)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, r := range conv.Results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Text)
	}
	return tw.Flush()
}

func (a *app) stream(styleID string) error {
	st, ok := a.registry.Lookup(styleID)
	if !ok {
		return fmt.Errorf("%w: %s", style.ErrUnknownStyle, styleID)
	}
	if _, err := io.Copy(a.stdout, transform.NewReader(a.stdin, st.Table.Transformer())); err != nil {
		return fmt.Errorf("convert %s: %w", styleID, err)
	}
	return nil
}

// list prints every style in display order.
func (a *app) list(format string) error {
	styles := a.service.Styles()
	if format != "text" {
		return encode(a.stdout, format, styles)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, s := range styles {
		fmt.Fprintf(tw, "%s\t%s\n", s.ID, s.Name)
	}
	return tw.Flush()
}

// plain prints text folded back towards plain characters.
func (a *app) plain(text string) error {
	if text == "" {
		in, err := a.readStdin()
		if err != nil {
			return err
		}
		text = strings.TrimRight(in, "\n")
	}
	_, err := fmt.Fprintln(a.stdout, style.Plain(text))
	return err
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
