package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/asmit/mentis/internal/app"
	"github.com/asmit/mentis/internal/classify"
	"github.com/asmit/mentis/internal/llm"
	"github.com/asmit/mentis/internal/narrative"
	"github.com/asmit/mentis/internal/store"
	"github.com/spf13/cobra"
)

// geminiCredential is the credential name used by 'mentis apikey'.
const geminiCredential = "gemini_api_key"

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
	}

	provider, err := buildProvider(ctx, st.CredentialRepo(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Classification falls back to heuristics; no narrative summary.")
	}

	// The classifier always runs: rule-based text scoring and the heuristic
	// prediction need no provider.
	opts.Classifier = classify.NewService(provider)
	if provider != nil {
		opts.Narrative = narrative.NewService(provider, narrative.DefaultConfig())
	}

	return app.Run(opts)
}

// buildProvider resolves LLM configuration in priority order: MENTIS_* env
// vars, then the standard provider key variables, then the API key cached
// with 'mentis apikey set'. Returns (nil, err) when nothing is configured.
func buildProvider(ctx context.Context, creds store.CredentialRepo, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return llm.NewProvider(ctx, cfg, eventRepo)
	}

	if discovered, ok := llm.DiscoverConfig(); ok {
		return llm.NewProvider(ctx, discovered, eventRepo)
	}

	key, err := creds.Get(ctx, geminiCredential)
	if err != nil {
		return nil, fmt.Errorf("read cached credential: %w", err)
	}
	if key != "" {
		cached := llm.DefaultConfig()
		cached.Gemini.APIKey = key
		return llm.NewProvider(ctx, cached, eventRepo)
	}

	return nil, cfg.Validate()
}
