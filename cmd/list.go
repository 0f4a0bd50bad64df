package cmd

import (
	"fmt"
	"strings"

	"quizforge/internal/store"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		quizzes := st.QuizRepo().ListAll(cmd.Context())
		if len(quizzes) == 0 {
			fmt.Println("No quizzes yet. Create one with 'quizforge create'.")
			return nil
		}

		fmt.Printf("%-24s  %-30s  %-9s  %s\n", "ID", "Title", "Questions", "Created")
		fmt.Println(strings.Repeat("─", 84))
		for _, q := range quizzes {
			title := q.Title
			if len(title) > 30 {
				title = title[:30]
			}
			fmt.Printf("%-24s  %-30s  %-9d  %s\n",
				q.ID, title, len(q.Questions),
				q.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}
