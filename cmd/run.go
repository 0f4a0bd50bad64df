package cmd

import (
	"fmt"
	"os"

	"quizforge/internal/app"
	"quizforge/internal/llm"
	"quizforge/internal/quiz"
	"quizforge/internal/quizgen"
	"quizforge/internal/store"

	"github.com/spf13/cobra"
)

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

	opts := app.Options{
		QuizRepo: st.QuizRepo(),
		Builder:  quiz.NewBuilder(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will use the fallback questions.")
	} else {
		opts.Generator = quizgen.New(provider, opts.Builder, quizgen.DefaultConfig())
	}

	return app.Run(opts)
}
