// Package learn holds the learning-zone quiz and the climate timelapse.
package learn

import (
	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/mock"
)

// Verdict summarises a finished quiz.
type Verdict int

const (
	VerdictKeepExploring Verdict = iota
	VerdictGood
	VerdictPerfect
)

// String returns the message shown on completion.
func (v Verdict) String() string {
	switch v {
	case VerdictPerfect:
		return "Perfect score! You're a satellite expert!"
	case VerdictGood:
		return "Great job! Keep learning!"
	default:
		return "Keep exploring to improve your score!"
	}
}

// Quiz tracks progress through a fixed list of questions. The zero value is
// not usable; call NewQuiz.
type Quiz struct {
	questions []mock.Question
	current   int
	selected  int // -1 until answered
	score     int
	complete  bool
}

// NewQuiz creates a quiz over qs.
func NewQuiz(qs []mock.Question) *Quiz {
	return &Quiz{
		questions: append([]mock.Question(nil), qs...),
		selected:  -1,
		complete:  len(qs) == 0,
	}
}

// Current returns the active question and its index.
func (q *Quiz) Current() (mock.Question, int) {
	if q.complete || q.current >= len(q.questions) {
		return mock.Question{}, q.current
	}
	return q.questions[q.current], q.current
}

// Len returns the number of questions.
func (q *Quiz) Len() int { return len(q.questions) }

// Answer records the first answer to the current question and reports
// whether it was correct. Later answers, out-of-range options and answers
// after completion are ignored and report false.
func (q *Quiz) Answer(option int) bool {
	if q.complete || q.selected >= 0 {
		return false
	}
	cur := q.questions[q.current]
	if option < 0 || option >= len(cur.Options) {
		return false
	}
	q.selected = option
	if option == cur.Correct {
		q.score++
		return true
	}
	return false
}

// Selected returns the chosen option for the current question.
func (q *Quiz) Selected() (int, bool) {
	return q.selected, q.selected >= 0
}

// Next advances to the following question, or completes the quiz after the
// last one. It does nothing until the current question is answered.
func (q *Quiz) Next() {
	if q.complete || q.selected < 0 {
		return
	}
	if q.current < len(q.questions)-1 {
		q.current++
		q.selected = -1
		return
	}
	q.complete = true
}

// Reset starts the quiz over.
func (q *Quiz) Reset() {
	q.current = 0
	q.selected = -1
	q.score = 0
	q.complete = len(q.questions) == 0
}

// Score returns the number of correct answers.
func (q *Quiz) Score() int { return q.score }

// Complete reports whether the last question has been passed.
func (q *Quiz) Complete() bool { return q.complete }

// Verdict grades the score: all correct is perfect, at least half is good.
func (q *Quiz) Verdict() Verdict {
	n := len(q.questions)
	switch {
	case n > 0 && q.score == n:
		return VerdictPerfect
	case float64(q.score) >= float64(n)/2:
		return VerdictGood
	default:
		return VerdictKeepExploring
	}
}

// Timeline maps a slider position onto the climate frames.
type Timeline struct {
	frames []mock.ClimateFrame
	slider float64
}

// NewTimeline creates a timeline positioned at the first frame.
func NewTimeline(frames []mock.ClimateFrame) *Timeline {
	return &Timeline{frames: append([]mock.ClimateFrame(nil), frames...)}
}

// SetSlider moves the slider, clamped to [0, 100].
func (t *Timeline) SetSlider(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 100:
		v = 100
	}
	t.slider = v
}

// Slider returns the slider position.
func (t *Timeline) Slider() float64 { return t.slider }

// Frame returns the frame under the slider.
func (t *Timeline) Frame() mock.ClimateFrame {
	if len(t.frames) == 0 {
		return mock.ClimateFrame{}
	}
	idx := derive.TimelineIndex(t.slider)
	if idx >= len(t.frames) {
		idx = len(t.frames) - 1
	}
	return t.frames[idx]
}

// Tone returns the colour family for the slider position.
func (t *Timeline) Tone() derive.Tone {
	return derive.TimelineTone(t.slider)
}
