// Seed the catalog from a JSON file, e.g.:
//
//	go run ./cmd/seed --file catalog.json
//
// The file holds an array of {title, author, isbn, location} objects.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arveereed/simple-library-management/config"
	bookrepo "github.com/arveereed/simple-library-management/repository/book"
	booksvc "github.com/arveereed/simple-library-management/service/book"
	"github.com/arveereed/simple-library-management/util/database"
)

type catalogEntry struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	Location string `json:"location"`
}

func main() {
	var file string

	root := &cobra.Command{
		Use:   "seed",
		Short: "Import a book catalog into the library database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), file)
		},
	}
	root.Flags().StringVar(&file, "file", "catalog.json", "path to the catalog JSON file")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, file string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}

	svc := booksvc.New(bookrepo.New(db))

	imported := 0
	for _, e := range entries {
		if _, err := svc.Create(ctx, e.Title, e.Author, e.ISBN, e.Location); err != nil {
			log.Warn("skipping entry", "title", e.Title, "err", err)
			continue
		}
		imported++
	}

	log.Info("catalog import done", "imported", imported, "total", len(entries))
	return nil
}
