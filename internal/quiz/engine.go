// Package quiz implements a generic step/score/finish engine shared by all
// game kinds. A game is a static question set; the engine tracks per-user
// Progress, shuffles answer options per step and computes the final remark
// from per-kind threshold bands.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Kind identifies the game mechanics a set belongs to. All kinds run on the
// same engine; only question data and remark thresholds differ.
type Kind string

const (
	KindTest  Kind = "test"
	KindTruth Kind = "truth"
	KindAssoc Kind = "assoc"
	KindBlitz Kind = "blitz"
)

var (
	ErrUnknownSet = errors.New("quiz: unknown question set")
	ErrNotRunning = errors.New("quiz: no question in progress")
)

// Question is a single step. For association sets Options is left empty and
// the engine draws distractors from the brand name pool at ask time.
type Question struct {
	Text    string
	Options []string
	Answer  string
}

// Set is a static question list under one game kind.
type Set struct {
	ID        string
	Kind      Kind
	Title     string
	Questions []Question
}

// Progress is the per-user state between questions. Step is 1-based and
// points at the question currently awaiting an answer.
type Progress struct {
	SetID    string
	Kind     Kind
	Step     int
	Score    int
	Expected string
	Options  []string
}

// Prompt is a question ready for display.
type Prompt struct {
	Step    int
	Text    string
	Options []string
}

// Feedback is the immediate reaction to one answer.
type Feedback struct {
	Correct bool
	Text    string
}

// Result is produced exactly once, after the last question is answered.
type Result struct {
	SetID   string
	Kind    Kind
	Score   int
	Total   int
	Remark  string
	Summary string
}

// Engine holds the registered sets and the brand name pool used to build
// association rounds. Safe for concurrent Start/Answer as long as each
// Progress value belongs to a single user.
type Engine struct {
	sets  map[string]Set
	names []string
	rnd   *rand.Rand
}

// NewEngine registers the given sets. names is the pool of canonical brand
// names association distractors are drawn from. rnd may be nil.
func NewEngine(sets []Set, names []string, rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := make(map[string]Set, len(sets))
	for _, s := range sets {
		m[s.ID] = s
	}
	return &Engine{sets: m, names: names, rnd: rnd}
}

// Set returns a registered set by id.
func (e *Engine) Set(id string) (Set, bool) {
	s, ok := e.sets[id]
	return s, ok
}

// Start resets progress for the set and returns the first prompt.
func (e *Engine) Start(setID string) (Progress, Prompt, error) {
	set, ok := e.sets[setID]
	if !ok {
		return Progress{}, Prompt{}, ErrUnknownSet
	}
	p := Progress{SetID: set.ID, Kind: set.Kind, Step: 1}
	prompt := e.ask(set, &p)
	return p, prompt, nil
}

// Answer scores text against the expected answer for the current step and
// advances. It returns the feedback plus either the next prompt or, after
// the final question, the Result. Exit handling (leaving mid-game) is the
// caller's job; any text reaching Answer is treated as an answer attempt.
func (e *Engine) Answer(p *Progress, text string) (Feedback, *Prompt, *Result, error) {
	set, ok := e.sets[p.SetID]
	if !ok {
		return Feedback{}, nil, nil, ErrUnknownSet
	}
	if p.Step < 1 || p.Step > len(set.Questions) {
		return Feedback{}, nil, nil, ErrNotRunning
	}

	fb := Feedback{Correct: text == p.Expected}
	if fb.Correct {
		p.Score++
		fb.Text = "✅ Верно!"
	} else {
		fb.Text = fmt.Sprintf("❌ Неверно. Правильный ответ: %s", p.Expected)
	}

	p.Step++
	if p.Step > len(set.Questions) {
		res := e.finish(set, p)
		return fb, nil, &res, nil
	}
	prompt := e.ask(set, p)
	return fb, &prompt, nil, nil
}

func (e *Engine) ask(set Set, p *Progress) Prompt {
	q := set.Questions[p.Step-1]
	opts := e.optionsFor(set.Kind, q)
	p.Expected = q.Answer
	p.Options = opts
	return Prompt{
		Step:    p.Step,
		Text:    fmt.Sprintf("Вопрос %d: %s", p.Step, q.Text),
		Options: opts,
	}
}

// optionsFor copies and shuffles the question options. Association questions
// carry no options of their own: three distractors are drawn without
// replacement from the other canonical names, joined with the answer.
func (e *Engine) optionsFor(kind Kind, q Question) []string {
	var opts []string
	if kind == KindAssoc && len(q.Options) == 0 {
		opts = e.assocOptions(q.Answer)
	} else {
		opts = make([]string, len(q.Options))
		copy(opts, q.Options)
	}
	e.rnd.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

func (e *Engine) assocOptions(answer string) []string {
	pool := make([]string, 0, len(e.names))
	for _, n := range e.names {
		if n != answer {
			pool = append(pool, n)
		}
	}
	opts := []string{answer}
	for _, idx := range e.rnd.Perm(len(pool)) {
		if len(opts) == 4 {
			break
		}
		opts = append(opts, pool[idx])
	}
	return opts
}

func (e *Engine) finish(set Set, p *Progress) Result {
	total := len(set.Questions)
	return Result{
		SetID:   set.ID,
		Kind:    set.Kind,
		Score:   p.Score,
		Total:   total,
		Remark:  remarkFor(set.Kind, p.Score),
		Summary: fmt.Sprintf("Готово! Правильных ответов: %d/%d", p.Score, total),
	}
}

type band struct {
	max    int
	remark string
}

// Remark thresholds per kind. Bands are checked in order; a score above
// every max gets the top remark.
var remarkBands = map[Kind][]band{
	KindTest: {
		{3, "😕 Нужно подтянуть знания"},
		{6, "🙂 Уже неплохо!"},
		{9, "👍 Отличный результат!"},
	},
	KindTruth: {
		{2, "😕 Нужно подтянуть знания"},
		{4, "🙂 Уже неплохо!"},
		{6, "👍 Отличный результат!"},
	},
	KindAssoc: {
		{1, "😕 Нужно подтянуть знания"},
		{3, "🙂 Уже неплохо!"},
		{5, "👍 Отличный результат!"},
	},
	KindBlitz: {
		{4, "😕 Нужно подтянуть знания"},
		{7, "🙂 Уже неплохо!"},
		{10, "👍 Отличный результат!"},
	},
}

const topRemark = "🏆 Ты — эксперт!"

func remarkFor(kind Kind, score int) string {
	for _, b := range remarkBands[kind] {
		if score <= b.max {
			return b.remark
		}
	}
	return topRemark
}
