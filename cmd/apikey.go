package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/asmit/mentis/internal/store"
	"github.com/spf13/cobra"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the cached Gemini API key",
}

var apikeySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Cache a Gemini API key for AI-assisted features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.TrimSpace(args[0])
		if key == "" {
			return fmt.Errorf("API key must not be empty")
		}

		return withCredentials(cmd, func(ctx context.Context, creds store.CredentialRepo) error {
			if err := creds.Set(ctx, geminiCredential, key); err != nil {
				return fmt.Errorf("save API key: %w", err)
			}
			fmt.Println("API key saved.")
			return nil
		})
	},
}

var apikeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether an API key is cached",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCredentials(cmd, func(ctx context.Context, creds store.CredentialRepo) error {
			key, err := creds.Get(ctx, geminiCredential)
			if err != nil {
				return fmt.Errorf("read API key: %w", err)
			}
			if key == "" {
				fmt.Println("No API key cached. Set one with 'mentis apikey set <key>'.")
				return nil
			}
			fmt.Printf("API key cached: %s\n", maskKey(key))
			return nil
		})
	},
}

var apikeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCredentials(cmd, func(ctx context.Context, creds store.CredentialRepo) error {
			if err := creds.Delete(ctx, geminiCredential); err != nil {
				return fmt.Errorf("delete API key: %w", err)
			}
			fmt.Println("API key cleared.")
			return nil
		})
	},
}

// withCredentials opens the store and hands its credential repo to fn.
func withCredentials(cmd *cobra.Command, fn func(context.Context, store.CredentialRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	return fn(cmd.Context(), st.CredentialRepo())
}

// maskKey shows just enough of a key to recognize it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyShowCmd)
	apikeyCmd.AddCommand(apikeyClearCmd)
}
