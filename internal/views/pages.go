package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/openshelf/catalog/internal/model"
)

const (
	IndexTitle      = "Local Library Home"
	BookListTitle   = "Book List"
	BookDetailTitle = "Book Detail"
)

// Index renders the catalog home page with record counts.
func Index(genreCount, bookCount int) templ.Component {
	return Layout(IndexTitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(w, IndexTitle); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<p>Welcome to the library catalog.</p><h2>Dynamic content</h2>`); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<ul class="counts"><li><strong>Books:</strong> %d</li><li><strong>Genres:</strong> %d</li></ul>`,
			bookCount, genreCount)
		return err
	}))
}

// BookList renders all books as links to their detail pages.
func BookList(books []model.Book) templ.Component {
	return Layout(BookListTitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(w, BookListTitle); err != nil {
			return err
		}
		return bookLinks(w, books, "There are no books.")
	}))
}

// BookDetail renders one book and the genre it belongs to. The genre may be
// the zero value when the referenced genre no longer exists.
func BookDetail(book model.Book, genre model.Genre) templ.Component {
	return Layout(BookDetailTitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Title: %s</h1>`, templ.EscapeString(book.Title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p><strong>Author:</strong> %s</p>`, templ.EscapeString(book.Author)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p><strong>Summary:</strong> %s</p>`, templ.EscapeString(book.Summary)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p><strong>ISBN:</strong> %s</p>`, templ.EscapeString(book.ISBN)); err != nil {
			return err
		}

		if genre.Name == "" {
			_, err := io.WriteString(w, `<p><strong>Genre:</strong> unknown</p>`)
			return err
		}
		_, err := fmt.Fprintf(w, `<p><strong>Genre:</strong> <a href="%s">%s</a></p>`,
			templ.EscapeString(genre.URL()), templ.EscapeString(genre.Name))
		return err
	}))
}

// ErrorPage renders the generic error page the global error handler uses.
func ErrorPage(status int, message string) templ.Component {
	return Layout("Error", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(w, message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<p class="status">Status: %d</p>`, status)
		return err
	}))
}
