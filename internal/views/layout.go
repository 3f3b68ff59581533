// Package views renders the catalog's HTML pages as templ components.
//
// Components are built programmatically with templ.ComponentFunc. Every
// dynamic value is passed through templ.EscapeString before it reaches the
// writer, so stored text can never inject markup into a page.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// navEntry is one link in the layout sidebar.
type navEntry struct {
	label string
	href  string
}

var sidebar = []navEntry{
	{label: "Home", href: "/catalog"},
	{label: "All books", href: "/catalog/books"},
	{label: "All genres", href: "/catalog/genres"},
	{label: "Create new genre", href: "/catalog/genre/create"},
}

// Layout wraps body in the catalog page skeleton: document head with the
// given title, the sidebar navigation, and a content column.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title>`+
				`<link rel="stylesheet" href="/static/style.css"></head><body><div class="page">`,
			templ.EscapeString(title),
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<nav class="sidebar"><ul>`); err != nil {
			return err
		}
		for _, entry := range sidebar {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`,
				templ.EscapeString(entry.href), templ.EscapeString(entry.label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul></nav><main class="content">`); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}

// heading writes an escaped <h1>.
func heading(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(text))
	return err
}

// errorList writes the validation messages block shown on form re-renders.
// It writes nothing when there are no messages.
func errorList(w io.Writer, messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, `<ul class="errors">`); err != nil {
		return err
	}
	for _, msg := range messages {
		if _, err := fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(msg)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}
