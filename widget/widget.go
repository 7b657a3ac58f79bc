// Package widget emits the client-side reCAPTCHA markup: a container
// element carrying the widget options as data attributes, and the remote
// script reference that turns it into a live challenge.
package widget

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/qolzam/fiber-recaptcha/internal/types"
)

// Options holds the presentation settings of the rendered widget.
type Options struct {
	// Theme is the widget color theme, "light" or "dark".
	Theme string
	// Size is the widget size, "normal" or "compact".
	Size string
	// TabIndex is the tab order of the challenge element.
	TabIndex int
	// Callback names the JS function invoked with the response token.
	Callback string
	// ExpiredCallback names the JS function invoked when the response expires.
	ExpiredCallback string
	// ErrorCallback names the JS function invoked on a widget error.
	ErrorCallback string
	// Language selects the display language of the challenge.
	Language string
	// Class lists extra CSS classes for the container element.
	Class string
	// Invisible renders the invisible variant instead of the checkbox.
	Invisible bool
}

// Tag returns the widget container element for the given site key.
func Tag(siteKey string, opts Options) string {
	var b strings.Builder

	class := "g-recaptcha"
	if opts.Class != "" {
		class += " " + opts.Class
	}

	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(class))
	b.WriteString(`" data-sitekey="`)
	b.WriteString(html.EscapeString(siteKey))
	b.WriteString(`"`)

	writeAttr(&b, "data-theme", opts.Theme)
	if opts.Invisible {
		writeAttr(&b, "data-size", "invisible")
	} else {
		writeAttr(&b, "data-size", opts.Size)
	}
	if opts.TabIndex != 0 {
		writeAttr(&b, "data-tabindex", fmt.Sprintf("%d", opts.TabIndex))
	}
	writeAttr(&b, "data-callback", opts.Callback)
	writeAttr(&b, "data-expired-callback", opts.ExpiredCallback)
	writeAttr(&b, "data-error-callback", opts.ErrorCallback)

	b.WriteString("></div>")
	return b.String()
}

// ScriptTag returns the remote widget script reference, parameterized by
// the configured display language.
func ScriptTag(opts Options) string {
	src := types.WidgetScriptURL
	if opts.Language != "" {
		src += "?hl=" + url.QueryEscape(opts.Language)
	}
	return fmt.Sprintf(`<script src="%s" async defer></script>`, html.EscapeString(src))
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, ` %s="%s"`, name, html.EscapeString(value))
}
