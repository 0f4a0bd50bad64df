package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quizforge/internal/store"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play a saved quiz in plain-text mode",
	Long: `Answer a saved quiz question by question on the command line.

Each question shows its numbered options; type the option number to
answer. The score is shown at the end. For the full-screen experience
run 'quizforge' without arguments.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	q, err := st.QuizRepo().FindByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load quiz: %w", err)
	}
	if q == nil {
		return fmt.Errorf("quiz %q not found", args[0])
	}

	scanner := bufio.NewScanner(os.Stdin)
	total := len(q.Questions)
	var correct int

	fmt.Printf("%s — %d questions\n\n", q.Title, total)

	for i, question := range q.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, total)
		fmt.Println(question.Text)
		for j, opt := range question.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(question.Options) {
			fmt.Printf("(skipped — answer was %q)\n\n", answer)
			continue
		}

		if question.Options[n-1] == question.CorrectAnswer {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", question.CorrectAnswer)
		}
		fmt.Println()
	}

	fmt.Printf("── Score: %d/%d ──\n", correct, total)
	return nil
}
