package main

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pexels-go/internal/pexels/client"
)

func buildCollectionsCmd(a *app) *cobra.Command {
	collectionsCmd := &cobra.Command{
		Use:   "collections",
		Short: "Browse media collections",
	}

	var featuredParams client.PageParams
	featuredCmd := &cobra.Command{
		Use:   "featured",
		Short: "List the featured collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.FeaturedCollections(cmd.Context(), featuredParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	featuredCmd.Flags().IntVar(&featuredParams.Page, "page", 0, "page number")
	featuredCmd.Flags().IntVar(&featuredParams.PerPage, "per-page", 0, "results per page (max 80)")

	var mineParams client.PageParams
	mineCmd := &cobra.Command{
		Use:   "mine",
		Short: "List the collections owned by your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.MyCollections(cmd.Context(), mineParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	mineCmd.Flags().IntVar(&mineParams.Page, "page", 0, "page number")
	mineCmd.Flags().IntVar(&mineParams.PerPage, "per-page", 0, "results per page (max 80)")

	var mediaParams client.CollectionMediaParams
	mediaCmd := &cobra.Command{
		Use:   "media <collection-id>",
		Short: "List the media inside a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.CollectionMedia(cmd.Context(), args[0], mediaParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	mediaCmd.Flags().StringVar(&mediaParams.MediaType, "type", "", "photos or videos; omit for both")
	mediaCmd.Flags().StringVar(&mediaParams.Sort, "sort", "", "asc or desc")
	mediaCmd.Flags().IntVar(&mediaParams.Page, "page", 0, "page number")
	mediaCmd.Flags().IntVar(&mediaParams.PerPage, "per-page", 0, "results per page (max 80)")

	collectionsCmd.AddCommand(featuredCmd)
	collectionsCmd.AddCommand(mineCmd)
	collectionsCmd.AddCommand(mediaCmd)

	return collectionsCmd
}
