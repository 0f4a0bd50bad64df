package collection

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizforge/internal/quiz"
	"quizforge/internal/router"
	"quizforge/internal/screen"
	"quizforge/internal/screens/play"
	"quizforge/internal/store"
	"quizforge/internal/ui/layout"
	"quizforge/internal/ui/theme"
)

// CollectionScreen lists saved quizzes for playing or deletion.
type CollectionScreen struct {
	repo     store.QuizRepo
	quizzes  []quiz.Quiz
	selected int

	confirmDelete bool
	errMsg        string
}

var _ screen.Screen = (*CollectionScreen)(nil)
var _ screen.KeyHintProvider = (*CollectionScreen)(nil)

// New creates a CollectionScreen, loading the saved quizzes. A load
// failure shows up as an empty collection rather than an error.
func New(repo store.QuizRepo) *CollectionScreen {
	c := &CollectionScreen{repo: repo}
	c.reload()
	return c
}

func (c *CollectionScreen) reload() {
	if c.repo == nil {
		c.quizzes = nil
		return
	}
	c.quizzes = c.repo.ListAll(context.Background())
	if c.selected >= len(c.quizzes) {
		c.selected = len(c.quizzes) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

func (c *CollectionScreen) Init() tea.Cmd {
	return nil
}

func (c *CollectionScreen) Title() string {
	return "My Collection"
}

func (c *CollectionScreen) KeyHints() []layout.KeyHint {
	if c.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CollectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.confirmDelete {
		switch kmsg.String() {
		case "y", "Y":
			c.confirmDelete = false
			if c.selected < len(c.quizzes) {
				if _, err := c.repo.DeleteByID(context.Background(), c.quizzes[c.selected].ID); err != nil {
					c.errMsg = "Could not delete the quiz."
				}
				c.reload()
			}
		case "n", "N", "esc":
			c.confirmDelete = false
		}
		return c, nil
	}

	c.errMsg = ""

	switch kmsg.String() {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.quizzes)-1 {
			c.selected++
		}
	case "enter":
		if c.selected < len(c.quizzes) {
			q := c.quizzes[c.selected]
			return c, func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(q)}
			}
		}
	case "d":
		if len(c.quizzes) > 0 {
			c.confirmDelete = true
		}
	}

	return c, nil
}

func (c *CollectionScreen) View(width, height int) string {
	if len(c.quizzes) == 0 {
		msg := theme.Subtitle.Render("No quizzes yet.") + "\n\n" +
			theme.Hint.Render("Create one from the home screen.")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center).
			Render(msg)
	}

	var b strings.Builder
	for i, q := range c.quizzes {
		line := fmt.Sprintf("%-30s  %2d questions  %s",
			truncate(q.Title, 30),
			len(q.Questions),
			q.CreatedAt.Local().Format("2006-01-02"))

		if i == c.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}

	if c.confirmDelete && c.selected < len(c.quizzes) {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(
			fmt.Sprintf("Delete %q? (y/n)", c.quizzes[c.selected].Title)))
	}

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(c.errMsg))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
