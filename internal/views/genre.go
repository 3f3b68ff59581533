package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/openshelf/catalog/internal/model"
)

// Page titles. UpdateGenreTitle is only shown on the update form's first
// render; a failed update submit re-renders under CreateGenreTitle (a known
// quirk, kept as-is).
const (
	GenreListTitle   = "Genre List"
	GenreDetailTitle = "Genre Detail"
	CreateGenreTitle = "Create Genre"
	DeleteGenreTitle = "Delete Genre"
	UpdateGenreTitle = "Update Genre"
)

// GenreList renders all genres as links to their detail pages.
func GenreList(genres []model.Genre) templ.Component {
	return Layout(GenreListTitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(w, GenreListTitle); err != nil {
			return err
		}
		if len(genres) == 0 {
			_, err := io.WriteString(w, `<p>There are no genres.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<ul class="genre-list">`); err != nil {
			return err
		}
		for _, genre := range genres {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`,
				templ.EscapeString(genre.URL()), templ.EscapeString(genre.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	}))
}

// GenreDetail renders one genre and the books that reference it.
func GenreDetail(genre model.Genre, books []model.Book) templ.Component {
	return Layout(GenreDetailTitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Genre: %s</h1>`, templ.EscapeString(genre.Name)); err != nil {
			return err
		}

		if err := bookLinks(w, books, "This genre has no books."); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w,
			`<p><a href="%s/update">Update Genre</a> <a href="%s/delete">Delete Genre</a></p>`,
			templ.EscapeString(genre.URL()), templ.EscapeString(genre.URL()))
		return err
	}))
}

// GenreForm renders the shared create/update form.
//
// The same template serves both flows: genre carries the pre-populated values
// (zero value for create), messages carries validation errors on re-render.
// The form posts back to the URL it was served from.
func GenreForm(title string, genre model.Genre, messages []string) templ.Component {
	return Layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(w, title); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<form method="POST" action=""><label for="name">Genre:</label>`+
				`<input id="name" name="name" type="text" placeholder="Fantasy, Poetry etc." value="%s" required>`+
				`<button type="submit">Submit</button></form>`,
			templ.EscapeString(genre.Name),
		); err != nil {
			return err
		}

		return errorList(w, messages)
	}))
}

// GenreDelete renders the delete confirmation page.
//
// When books still reference the genre, the form is withheld and the books
// are listed instead: the user must delete them first.
func GenreDelete(genre model.Genre, books []model.Book) templ.Component {
	return Layout(DeleteGenreTitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(w, DeleteGenreTitle); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p>Genre: %s</p>`, templ.EscapeString(genre.Name)); err != nil {
			return err
		}

		if len(books) > 0 {
			if _, err := io.WriteString(w,
				`<p>Delete the following books before attempting to delete this genre:</p>`); err != nil {
				return err
			}
			return bookLinks(w, books, "")
		}

		if _, err := io.WriteString(w, `<p>Do you really want to delete this Genre?</p>`); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="POST" action=""><input type="hidden" name="genreid" value="%s">`+
				`<button type="submit">Delete</button></form>`,
			templ.EscapeString(genre.ID.String()))
		return err
	}))
}

// bookLinks writes books as a list of links with authors, or the empty-state
// text when there are none (and emptyText is set).
func bookLinks(w io.Writer, books []model.Book, emptyText string) error {
	if len(books) == 0 {
		if emptyText == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(emptyText))
		return err
	}

	if _, err := io.WriteString(w, `<ul class="book-list">`); err != nil {
		return err
	}
	for _, book := range books {
		if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a> (%s)</li>`,
			templ.EscapeString(book.URL()),
			templ.EscapeString(book.Title),
			templ.EscapeString(book.Author)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}
