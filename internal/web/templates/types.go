// Package templates holds the templ components for the font generator page.
//
// Edit the .templ files and run `templ generate`; the _templ.go files are
// generated.
package templates

import "github.com/JonMunkholm/fancyfont/internal/core"

// PageData is everything the page needs to render.
type PageData struct {
	Input      string
	Results    []core.Result
	Submitted  bool
	Error      *core.UserMessage
	MaxLength  int
	StyleCount int
}
