package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/learn"
	"github.com/litescript/spacescope/internal/mock"
)

const sliderStep = 5

// LearnModel is the learning zone: the climate timelapse and the quiz.
type LearnModel struct {
	width    int
	height   int
	quiz     *learn.Quiz
	timeline *learn.Timeline
	cursor   int
}

// NewLearnModel creates the learning zone from the seed content.
func NewLearnModel() LearnModel {
	return LearnModel{
		quiz:     learn.NewQuiz(mock.QuizQuestions()),
		timeline: learn.NewTimeline(mock.ClimateTimeline()),
	}
}

// SetSize updates the viewport size.
func (m LearnModel) SetSize(width, height int) LearnModel {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m LearnModel) Update(msg tea.Msg) (LearnModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cur, _ := m.quiz.Current()
	switch keyMsg.String() {
	case "left", "h":
		m.timeline.SetSlider(m.timeline.Slider() - sliderStep)
	case "right", "l":
		m.timeline.SetSlider(m.timeline.Slider() + sliderStep)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(cur.Options)-1 {
			m.cursor++
		}
	case "enter":
		if _, answered := m.quiz.Selected(); answered {
			m.quiz.Next()
			m.cursor = 0
		} else {
			m.quiz.Answer(m.cursor)
		}
	case "r":
		m.quiz.Reset()
		m.cursor = 0
	}
	return m, nil
}

// View renders the learning zone.
func (m LearnModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTimeline())
	b.WriteString("\n")
	b.WriteString(m.renderQuiz())
	return b.String()
}

func (m LearnModel) renderTimeline() string {
	frame := m.timeline.Frame()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Aral Sea Timelapse"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d  %s\n", frame.Year, frame.Label)
	fmt.Fprintf(&b, "slider %s %3.0f%%\n",
		renderGaugeBar(m.timeline.Slider(), 30, m.timeline.Tone()), m.timeline.Slider())
	fmt.Fprintf(&b, "water %s %d%%\n",
		renderGaugeBar(float64(frame.WaterLevel), 30, m.timeline.Tone()), frame.WaterLevel)
	b.WriteString(dimStyle.Render("←/→: move through time"))
	b.WriteString("\n")
	return b.String()
}

func (m LearnModel) renderQuiz() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz"))
	b.WriteString("\n")

	if m.quiz.Complete() {
		fmt.Fprintf(&b, "Score: %d/%d\n", m.quiz.Score(), m.quiz.Len())
		b.WriteString(accentStyle.Render(m.quiz.Verdict().String()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("r: try again"))
		b.WriteString("\n")
		return b.String()
	}

	q, idx := m.quiz.Current()
	fmt.Fprintf(&b, "Question %d of %d  (score %d)\n", idx+1, m.quiz.Len(), m.quiz.Score())
	b.WriteString(q.Prompt)
	b.WriteString("\n")

	selected, answered := m.quiz.Selected()
	for i, opt := range q.Options {
		line := fmt.Sprintf("  %c) %s", 'a'+i, opt)
		switch {
		case answered && i == q.Correct:
			b.WriteString(toneStyle(derive.ToneCalm).Render(line + "  ✓"))
		case answered && i == selected:
			b.WriteString(errorStyle.Render(line + "  ✗"))
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if answered {
		b.WriteString(dimStyle.Render(q.Explanation))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter: next"))
	} else {
		b.WriteString(dimStyle.Render("↑↓: choose | enter: answer"))
	}
	b.WriteString("\n")
	return b.String()
}
