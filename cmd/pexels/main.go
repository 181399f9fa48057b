// Package main provides the pexels command line client.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/pexels-go/internal/pexels/client"
	"github.com/rshade/pexels-go/internal/pexels/config"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the constructed API client into the subcommands.
type app struct {
	client client.Client
}

func buildRootCmd() *cobra.Command {
	var (
		apiKey     string
		configPath string
		timeout    time.Duration
		verbose    bool
	)

	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pexels",
		Short: "Search and fetch royalty-free photos and videos from Pexels",
		Long: `A command line client for the Pexels photo and video API.

Results print as JSON on stdout. The API key is resolved from --api-key,
the PEXELS_API_KEY environment variable, a .env file in the working
directory, or the config file, in that order.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}

			clientCfg := client.DefaultConfig(cfg.APIKey)
			clientCfg.Timeout = cfg.Timeout
			if verbose {
				handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})
				clientCfg.Logger = client.NewSlogLogger(slog.New(handler))
			}

			c, err := client.New(clientCfg)
			if err != nil {
				return err
			}
			a.client = c
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Pexels API key (overrides PEXELS_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(buildPhotosCmd(a))
	rootCmd.AddCommand(buildVideosCmd(a))
	rootCmd.AddCommand(buildCollectionsCmd(a))

	return rootCmd
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx := context.Background()
	rootCmd := buildRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
