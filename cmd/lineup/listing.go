package main

import (
	"context"
	"fmt"

	"festival-lineup/internal/lineup"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var criteria lineup.Criteria

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally filtered by genre and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			events, err := a.client().ListEvents(ctx)
			if err != nil {
				return fmt.Errorf("could not load bands from the server: %w", err)
			}
			a.printEvents(lineup.Filter(events, criteria))
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.Genre, "genre", lineup.AllGenres, "exact genre to show, or \"all\"")
	cmd.Flags().StringVar(&criteria.Search, "search", "", "case-insensitive substring of the band name")
	return cmd
}

func (a *app) genresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genres present in the lineup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			events, err := a.client().ListEvents(ctx)
			if err != nil {
				return fmt.Errorf("could not load bands from the server: %w", err)
			}
			fmt.Fprintln(a.out, lineup.AllGenres)
			for _, g := range lineup.Genres(events) {
				fmt.Fprintln(a.out, g)
			}
			return nil
		},
	}
}
