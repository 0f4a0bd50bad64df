package create

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizforge/internal/quiz"
	"quizforge/internal/quizgen"
	"quizforge/internal/router"
	"quizforge/internal/screen"
	"quizforge/internal/screens/play"
	"quizforge/internal/store"
	"quizforge/internal/ui/components"
	"quizforge/internal/ui/layout"
	"quizforge/internal/ui/theme"
)

// phase tracks which part of the create flow is active.
type phase int

const (
	phaseEditing phase = iota
	phaseGenerating
	phaseFailed
)

// field identifies the focused input.
type field int

const (
	fieldTitle field = iota
	fieldText
)

// quizReadyMsg is sent when generation (or the fallback build) and
// persistence have finished.
type quizReadyMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// CreateScreen collects a title and source text, then generates and
// saves a quiz.
type CreateScreen struct {
	repo      store.QuizRepo
	builder   *quiz.Builder
	generator quizgen.Generator

	phase   phase
	focused field
	title   components.TextInput
	text    components.TextInput
	spin    int
	errMsg  string
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)

// New creates a new CreateScreen. A nil generator disables the AI path;
// generation then goes straight to the fallback questions.
func New(repo store.QuizRepo, builder *quiz.Builder, generator quizgen.Generator) *CreateScreen {
	if builder == nil {
		builder = quiz.NewBuilder()
	}

	title := components.NewTextInput("Quiz title...", 80)
	text := components.NewTextInput("Paste the source text here...", 0)
	text.Model.Blur()

	return &CreateScreen{
		repo:      repo,
		builder:   builder,
		generator: generator,
		title:     title,
		text:      text,
	}
}

func (c *CreateScreen) Init() tea.Cmd {
	return c.title.Init()
}

func (c *CreateScreen) Title() string {
	return "Create Quiz"
}

func (c *CreateScreen) KeyHints() []layout.KeyHint {
	switch c.phase {
	case phaseGenerating:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "F", Description: "Fallback quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (c *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if msg.Err != nil {
			c.phase = phaseFailed
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		return c, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: play.New(*msg.Quiz)}
		}

	case spinnerTickMsg:
		if c.phase != phaseGenerating {
			return c, nil
		}
		c.spin++
		return c, c.spinnerTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return c.updateFocused(msg)
}

func (c *CreateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch c.phase {
	case phaseGenerating:
		return c, nil

	case phaseFailed:
		switch msg.String() {
		case "r":
			return c, c.startGeneration(false)
		case "f":
			return c, c.startGeneration(true)
		}
		return c, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		if c.focused == fieldTitle {
			c.focused = fieldText
			c.title.Model.Blur()
			return c, c.text.Model.Focus()
		}
		c.focused = fieldTitle
		c.text.Model.Blur()
		return c, c.title.Model.Focus()

	case "enter":
		if strings.TrimSpace(c.title.Value()) == "" {
			c.errMsg = "A title is required."
			return c, nil
		}
		if strings.TrimSpace(c.text.Value()) == "" {
			c.errMsg = "Paste some source text first."
			return c, nil
		}
		c.errMsg = ""
		return c, c.startGeneration(false)
	}

	return c.updateFocused(msg)
}

func (c *CreateScreen) updateFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if c.focused == fieldTitle {
		c.title, cmd = c.title.Update(msg)
	} else {
		c.text, cmd = c.text.Update(msg)
	}
	return c, cmd
}

// startGeneration kicks off quiz generation in a command. With
// useFallback (or no generator at all) it builds the generic quiz
// instead of calling the model.
func (c *CreateScreen) startGeneration(useFallback bool) tea.Cmd {
	c.phase = phaseGenerating
	c.errMsg = ""

	title := strings.TrimSpace(c.title.Value())
	sourceText := c.text.Value()

	gen := func() tea.Msg {
		ctx := context.Background()

		var q *quiz.Quiz
		var err error
		if useFallback || c.generator == nil {
			fb := c.builder.Fallback(title)
			q = &fb
		} else {
			q, err = c.generator.Generate(ctx, sourceText, title)
			if err != nil {
				return quizReadyMsg{Err: err}
			}
		}

		if c.repo != nil {
			if err = c.repo.Append(ctx, *q); err != nil {
				return quizReadyMsg{Err: fmt.Errorf("save quiz: %w", err)}
			}
		}
		return quizReadyMsg{Quiz: q}
	}

	return tea.Batch(gen, c.spinnerTick())
}

func (c *CreateScreen) spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (c *CreateScreen) View(width, height int) string {
	switch c.phase {
	case phaseGenerating:
		return c.renderGenerating(width, height)
	case phaseFailed:
		return c.renderFailed(width, height)
	}
	return c.renderForm(width, height)
}

func (c *CreateScreen) renderForm(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	var b strings.Builder
	b.WriteString(label.Render("TITLE"))
	b.WriteString("\n")
	b.WriteString(c.title.View())
	b.WriteString("\n\n")
	b.WriteString(label.Render("SOURCE TEXT"))
	b.WriteString("\n")
	b.WriteString(c.text.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("The quiz questions are generated from this text."))

	if c.errMsg != "" {
		b.WriteString("\n\n")
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

func (c *CreateScreen) renderGenerating(width, height int) string {
	frame := spinnerFrames[c.spin%len(spinnerFrames)]
	msg := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(frame+" Generating quiz...") +
		"\n\n" +
		theme.Hint.Render("Reading the text and writing questions.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(msg)
}

func (c *CreateScreen) renderFailed(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Generation failed"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(wrap(c.errMsg, min(width-12, 68))))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("R to retry · F to build a fallback quiz · Esc to go back"))

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

// wrap breaks a long message at word boundaries.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
