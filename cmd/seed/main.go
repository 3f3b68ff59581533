// Command seed loads sample genres and books into the catalog through the
// repository layer. It is idempotent on genre names: re-running it reuses
// genres that already exist instead of duplicating them.
package main

import (
	"context"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/model"
	"github.com/openshelf/catalog/internal/repository"
	"github.com/openshelf/catalog/internal/server"
	"github.com/openshelf/catalog/internal/service"
)

type seedBook struct {
	title   string
	author  string
	summary string
	isbn    string
	genre   string
}

var genreNames = []string{"Fantasy", "Science Fiction", "French Poetry"}

var books = []seedBook{
	{
		title:   "The Name of the Wind",
		author:  "Patrick Rothfuss",
		summary: "The tale of the magically gifted young man Kvothe, as told by himself.",
		isbn:    "9781473211896",
		genre:   "Fantasy",
	},
	{
		title:   "The Wise Man's Fear",
		author:  "Patrick Rothfuss",
		summary: "Kvothe takes his first steps on the path of the hero.",
		isbn:    "9781473214408",
		genre:   "Fantasy",
	},
	{
		title:   "Apes and Angels",
		author:  "Ben Bova",
		summary: "Humankind headed out to the stars not to conquer, but to save intelligent species from a wave of death.",
		isbn:    "9780765379528",
		genre:   "Science Fiction",
	},
	{
		title:   "Death Wave",
		author:  "Ben Bova",
		summary: "Jordan Kell led the first human mission beyond the solar system.",
		isbn:    "9780765379504",
		genre:   "Science Fiction",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("local")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Primary.Env)

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}
	defer func() { _ = srv.DB.Close() }()

	repos := repository.NewRepositories(srv)
	catalog := service.NewCatalogService(repos.Genres, repos.Books)

	// CreateGenre reuses an existing genre with the same name, so running
	// the seeder twice does not duplicate anything.
	genresByName := make(map[string]model.Genre, len(genreNames))
	for _, name := range genreNames {
		genre, err := catalog.CreateGenre(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Str("genre", name).Msg("failed to seed genre")
		}
		genresByName[name] = genre
		log.Info().Str("genre", genre.Name).Str("id", genre.ID.String()).Msg("seeded genre")
	}

	existing, err := repos.Books.All(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list books")
	}

	for _, b := range books {
		genre := genresByName[b.genre]

		// Skip books already present (matched by title).
		if hasTitle(existing, b.title) {
			log.Info().Str("book", b.title).Msg("book already seeded")
			continue
		}

		id, err := repos.Books.Insert(ctx, model.Book{
			Title:   b.title,
			Author:  b.author,
			Summary: b.summary,
			ISBN:    b.isbn,
			Genre:   genre.ID,
		})
		if err != nil {
			log.Fatal().Err(err).Str("book", b.title).Msg("failed to seed book")
		}
		log.Info().Str("book", b.title).Str("id", id.String()).Msg("seeded book")
	}

	names, err := repos.Genres.Names(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list genres")
	}
	log.Info().Strs("genres", names).Msg("seeding complete")
}

func hasTitle(books []model.Book, title string) bool {
	for _, b := range books {
		if b.Title == title {
			return true
		}
	}
	return false
}
