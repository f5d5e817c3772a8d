package main

import (
	"fmt"

	"bookrec/catalog"
	"bookrec/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fetchCmd rebuilds books.json from the Open Library subject API, one
// request per known genre.
func fetchCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Rebuild the catalog from Open Library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			genres, err := catalog.LoadGenres(cfg.GenresPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fetcher := catalog.NewFetcher()
			fetcher.Progress = func(subject string) {
				fmt.Fprintf(out, "Fetching books from subject: %s\n", subject)
			}

			books, err := fetcher.FetchAll(cmd.Context(), genres)
			if err != nil {
				return err
			}
			if err := catalog.Save(cfg.CatalogPath, books); err != nil {
				return err
			}

			fmt.Fprintf(out, "Saved %d books to %s!\n", len(books), cfg.CatalogPath)
			return nil
		},
	}
}
