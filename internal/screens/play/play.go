package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizforge/internal/quiz"
	"quizforge/internal/router"
	"quizforge/internal/screen"
	"quizforge/internal/ui/components"
	"quizforge/internal/ui/layout"
	"quizforge/internal/ui/theme"
)

// PlayScreen runs through a quiz question by question.
type PlayScreen struct {
	quiz    quiz.Quiz
	index   int
	choice  components.MultiChoice
	correct int
	done    bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the given quiz.
func New(q quiz.Quiz) *PlayScreen {
	p := &PlayScreen{quiz: q}
	if len(q.Questions) > 0 {
		p.choice = newChoice(q.Questions[0])
	} else {
		p.done = true
	}
	return p
}

func newChoice(q quiz.Question) components.MultiChoice {
	correct := 0
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			correct = i
			break
		}
	}
	return components.NewMultiChoice(q.Text, q.Options, correct)
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayScreen) Title() string {
	return p.quiz.Title
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.done {
		return []layout.KeyHint{
			{Key: "r", Description: "Play again"},
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if p.choice.Submitted {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.done {
		switch kmsg.String() {
		case "enter":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			p.restart()
		}
		return p, nil
	}

	if p.choice.Submitted {
		p.advance()
		return p, nil
	}

	var cmd tea.Cmd
	p.choice, cmd = p.choice.Update(msg)
	if p.choice.Submitted && p.choice.IsCorrect() {
		p.correct++
	}
	return p, cmd
}

// advance moves to the next question, or to the summary when the last
// question was answered.
func (p *PlayScreen) advance() {
	p.index++
	if p.index >= len(p.quiz.Questions) {
		p.done = true
		return
	}
	p.choice = newChoice(p.quiz.Questions[p.index])
}

// restart resets the run so the quiz can be played again from the start.
func (p *PlayScreen) restart() {
	p.index = 0
	p.correct = 0
	p.done = len(p.quiz.Questions) == 0
	if !p.done {
		p.choice = newChoice(p.quiz.Questions[0])
	}
}

// Score returns the running correct count and the total question count.
func (p *PlayScreen) Score() (correct, total int) {
	return p.correct, len(p.quiz.Questions)
}

func (p *PlayScreen) View(width, height int) string {
	if p.done {
		return p.renderSummary(width, height)
	}

	total := len(p.quiz.Questions)
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", p.index+1, total),
		float64(p.index)/float64(total),
		false,
		min(width-8, 72),
	)

	var b strings.Builder
	b.WriteString(progress.View())
	b.WriteString("\n\n")
	b.WriteString(p.choice.View())

	if p.choice.Submitted {
		b.WriteString("\n")
		if p.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("✓ Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Wrong."))
		}
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (p *PlayScreen) renderSummary(width, height int) string {
	correct, total := p.Score()

	headline := "Quiz complete!"
	if total > 0 && correct == total {
		headline = "Perfect score!"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(headline))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You answered %d of %d correctly.", correct, total)))

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
