package cmd

import (
	"fmt"

	"quizforge/internal/store"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved quiz",
	Args:  cobra.ExactArgs(1),
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

		// Deleting an absent id is not an error, but say what happened.
		deleted, err := st.QuizRepo().DeleteByID(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete quiz: %w", err)
		}

		if deleted {
			fmt.Printf("Deleted quiz %s\n", args[0])
		} else {
			fmt.Printf("Quiz %s was not found; nothing to delete.\n", args[0])
		}
		return nil
	},
}
