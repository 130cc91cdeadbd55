// Command fontgen converts text into decorative Unicode styles from the
// command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/JonMunkholm/fancyfont/internal/config"
	"github.com/JonMunkholm/fancyfont/internal/core"
	"github.com/JonMunkholm/fancyfont/internal/logging"
	"github.com/JonMunkholm/fancyfont/internal/style"
	_ "github.com/JonMunkholm/fancyfont/internal/style/fonts" // Register all styles
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Convert struct {
		Text   string `arg:"" optional:"" name:"text" help:"Text to convert. Read from standard input when omitted."`
		Style  string `help:"Convert with this style only." short:"s"`
		Format string `help:"Output format." enum:"text,json,yaml" default:"text" short:"f"`
	} `cmd:"" help:"Convert text through every style."`

	List struct {
		Format string `help:"Output format." enum:"text,json,yaml" default:"text" short:"f"`
	} `cmd:"" help:"List the available styles."`

	Plain struct {
		Text string `arg:"" optional:"" name:"text" help:"Styled text. Read from standard input when omitted."`
	} `cmd:"" help:"Fold styled text back towards plain characters."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "fontgen: %s\n", errorText(err))
	os.Exit(1)
}

// errorText prefers the coded user message and falls back to the raw error.
func errorText(err error) string {
	if core.IsUserFacing(err) {
		return core.FormatUserError(err)
	}
	return err.Error()
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("fontgen"),
		kong.Description("convert text into decorative Unicode styles"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	cfg, err := config.Load()
	if err != nil {
		writeError(err)
	}

	level := cfg.Logging.Level
	if CLI.Debug {
		level = "debug"
	}
	// stdout carries converted text only.
	logging.SetupWriter(os.Stderr, level, cfg.Logging.Format)

	a := &app{
		service:     core.NewService(style.Default, cfg),
		registry:    style.Default,
		stdin:       core.NewInputReader(os.Stdin),
		stdout:      os.Stdout,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	runCtx := core.ContextWithSource(context.Background(), core.SourceCLI)

	switch ctx.Command() {
	case "convert", "convert <text>":
		err = a.convert(runCtx, CLI.Convert.Text, CLI.Convert.Style, CLI.Convert.Format)
	case "list":
		err = a.list(CLI.List.Format)
	case "plain", "plain <text>":
		err = a.plain(CLI.Plain.Text)
	default:
		slog.Debug("unhandled command", "command", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}
