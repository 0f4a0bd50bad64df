package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizforge/internal/quiz"
	"quizforge/internal/quizgen"
	"quizforge/internal/router"
	"quizforge/internal/screen"
	"quizforge/internal/screens/collection"
	"quizforge/internal/screens/create"
	"quizforge/internal/store"
	"quizforge/internal/ui/components"
	"quizforge/internal/ui/theme"
)

// Deps carries the dependencies the home screen hands down to its
// child screens.
type Deps struct {
	QuizRepo  store.QuizRepo
	Builder   *quiz.Builder
	Generator quizgen.Generator
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu      components.Menu
	quizCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	quizCount := 0
	if deps.QuizRepo != nil {
		quizCount = len(deps.QuizRepo.ListAll(context.Background()))
	}

	items := []components.MenuItem{
		{Label: "CREATE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: create.New(deps.QuizRepo, deps.Builder, deps.Generator),
				}
			}
		}},
		{Label: "MY COLLECTION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: collection.New(deps.QuizRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		quizCount: quizCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(logo))
	sections = append(sections, theme.Subtitle.Width(width).Render("Turn any text into a quiz"))

	stats := "No quizzes saved yet"
	switch {
	case h.quizCount == 1:
		stats = "1 quiz in your collection"
	case h.quizCount > 1:
		stats = fmt.Sprintf("%d quizzes in your collection", h.quizCount)
	}
	sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(stats))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

const logo = `
 ██████╗ ██╗   ██╗██╗███████╗███████╗ ██████╗ ██████╗  ██████╗ ███████╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
██║   ██║██║   ██║██║  ███╔╝ █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
██║▄▄ ██║██║   ██║██║ ███╔╝  ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
╚██████╔╝╚██████╔╝██║███████╗██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`
