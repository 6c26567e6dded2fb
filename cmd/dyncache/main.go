// Command dyncache inspects and mutates the configured cache backend from
// the shell. Backend selection and tuning come from the CACHE_* environment
// variables.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haltia-labs/dynamics/cache"
	"github.com/haltia-labs/dynamics/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dyncache",
		Short: "Inspect and mutate the Web API client cache",
	}

	rootCmd.AddCommand(
		getCmd(),
		setCmd(),
		clearCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		config.Exitf("%v", err)
	}
}

func openBackend(ctx context.Context) (cache.Backend, error) {
	cfg, err := cache.FromEnv()
	if err != nil {
		return nil, err
	}
	return cache.New(ctx, cfg)
}

func closeBackend(backend cache.Backend) {
	if closer, ok := backend.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("close cache backend: %v", err)
		}
	}
}

func getCmd() *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the cached value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backend, err := openBackend(ctx)
			if err != nil {
				return err
			}
			defer closeBackend(backend)

			value := fallback
			if _, err := backend.Get(ctx, args[0], &value); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, value)
			return nil
		},
	}
	cmd.Flags().StringVar(&fallback, "default", "", "Value printed when the key is absent or expired")
	return cmd
}

func setCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backend, err := openBackend(ctx)
			if err != nil {
				return err
			}
			defer closeBackend(backend)

			return backend.Set(ctx, args[0], args[1], ttl)
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", cache.DefaultTTL, "Entry lifetime")
	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cache entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backend, err := openBackend(ctx)
			if err != nil {
				return err
			}
			defer closeBackend(backend)

			return backend.Clear(ctx)
		},
	}
}
