package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/pexels-go/internal/pexels/client"
)

func buildVideosCmd(a *app) *cobra.Command {
	videosCmd := &cobra.Command{
		Use:   "videos",
		Short: "Search and fetch videos",
	}

	var searchParams client.VideoSearchParams
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the video catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.SearchVideos(cmd.Context(), args[0], searchParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	searchCmd.Flags().StringVar(&searchParams.Orientation, "orientation", "", "landscape, portrait or square")
	searchCmd.Flags().StringVar(&searchParams.Size, "size", "", "large, medium or small")
	searchCmd.Flags().StringVar(&searchParams.Locale, "locale", "", `search locale, e.g. "en-US"`)
	searchCmd.Flags().IntVar(&searchParams.Page, "page", 0, "page number")
	searchCmd.Flags().IntVar(&searchParams.PerPage, "per-page", 0, "results per page (max 80)")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a single video by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid video ID %q", args[0])
			}
			video, err := a.client.Video(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, video)
		},
	}

	var popularParams client.PopularVideoParams
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List the currently popular videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.PopularVideos(cmd.Context(), popularParams)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}
	popularCmd.Flags().IntVar(&popularParams.MinWidth, "min-width", 0, "minimum width in pixels")
	popularCmd.Flags().IntVar(&popularParams.MinHeight, "min-height", 0, "minimum height in pixels")
	popularCmd.Flags().IntVar(&popularParams.MinDuration, "min-duration", 0, "minimum duration in seconds")
	popularCmd.Flags().IntVar(&popularParams.MaxDuration, "max-duration", 0, "maximum duration in seconds")
	popularCmd.Flags().IntVar(&popularParams.Page, "page", 0, "page number")
	popularCmd.Flags().IntVar(&popularParams.PerPage, "per-page", 0, "results per page (max 80)")

	videosCmd.AddCommand(searchCmd)
	videosCmd.AddCommand(getCmd)
	videosCmd.AddCommand(popularCmd)

	return videosCmd
}
