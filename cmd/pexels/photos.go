package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/pexels-go/internal/pexels/client"
)

func buildPhotosCmd(a *app) *cobra.Command {
	photosCmd := &cobra.Command{
		Use:   "photos",
		Short: "Search and fetch photos",
	}

	var searchParams client.PhotoSearchParams
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the photo catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.SearchPhotos(cmd.Context(), args[0], searchParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	searchCmd.Flags().StringVar(&searchParams.Orientation, "orientation", "", "landscape, portrait or square")
	searchCmd.Flags().StringVar(&searchParams.Size, "size", "", "large, medium or small")
	searchCmd.Flags().StringVar(&searchParams.Color, "color", "", "color name or hex code")
	searchCmd.Flags().StringVar(&searchParams.Locale, "locale", "", `search locale, e.g. "en-US"`)
	searchCmd.Flags().IntVar(&searchParams.Page, "page", 0, "page number")
	searchCmd.Flags().IntVar(&searchParams.PerPage, "per-page", 0, "results per page (max 80)")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a single photo by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid photo ID %q", args[0])
			}
			photo, err := a.client.Photo(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, photo)
		},
	}

	var curatedParams client.PageParams
	curatedCmd := &cobra.Command{
		Use:   "curated",
		Short: "List photos curated by the Pexels team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.CuratedPhotos(cmd.Context(), curatedParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	curatedCmd.Flags().IntVar(&curatedParams.Page, "page", 0, "page number")
	curatedCmd.Flags().IntVar(&curatedParams.PerPage, "per-page", 0, "results per page (max 80)")

	photosCmd.AddCommand(searchCmd)
	photosCmd.AddCommand(getCmd)
	photosCmd.AddCommand(curatedCmd)

	return photosCmd
}
