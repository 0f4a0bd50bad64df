package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"quizforge/internal/llm"
	"quizforge/internal/quiz"
	"quizforge/internal/quizgen"
	"quizforge/internal/store"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Generate a quiz from a text file or stdin",
	Long: `Generate a multiple-choice quiz from source text.

Reads the text from the given file, or from stdin when no file is
given. The quiz is saved to the local database and can be played with
'quizforge play <id>' or from the TUI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringP("title", "t", "", "Quiz title (required)")
	createCmd.Flags().Bool("fallback", false, "Build a quiz from generic questions on generation failure")
	_ = createCmd.MarkFlagRequired("title")
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	useFallback, _ := cmd.Flags().GetBool("fallback")

	sourceText, err := readSourceText(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(sourceText) == "" {
		return fmt.Errorf("source text is empty")
	}

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

	builder := quiz.NewBuilder()

	var q *quiz.Quiz
	provider, perr := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if perr == nil {
		svc := quizgen.New(provider, builder, quizgen.DefaultConfig())
		q, err = svc.Generate(ctx, sourceText, title)
	} else {
		err = perr
	}

	if err != nil {
		if !useFallback {
			return fmt.Errorf("generate quiz: %w (pass --fallback to build a generic quiz instead)", err)
		}
		fmt.Fprintln(os.Stderr, "Generation failed:", err)
		fmt.Fprintln(os.Stderr, "Building fallback quiz.")
		fb := builder.Fallback(title)
		q = &fb
	}

	if err := st.QuizRepo().Append(ctx, *q); err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}

	fmt.Printf("Created quiz %s (%q, %d questions)\n", q.ID, q.Title, len(q.Questions))
	return nil
}

// readSourceText reads the quiz source from the named file, or stdin
// when no file argument was given.
func readSourceText(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read source file: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return "", errors.New("no input: provide a file argument or pipe text to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
