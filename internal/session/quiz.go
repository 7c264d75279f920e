package session

import (
	"context"
	"errors"

	"github.com/justvibes99/enumerate/internal/domain"
)

// State is the quiz state machine position.
type State int

const (
	// Empty means card selection produced nothing to review. Terminal.
	Empty State = iota
	// InProgress means cards remain to be graded.
	InProgress
	// Complete means every card was graded and the session record has
	// been persisted. Terminal.
	Complete
)

// ErrQuizFinished is returned when answering a quiz that is not in
// progress.
var ErrQuizFinished = errors.New("session: quiz is not in progress")

// Quiz runs one study session over an immutable card sequence. Each
// answer grades the current card and advances the cursor; a card can
// never be skipped or re-graded. The session record is written exactly
// once, when the last card is answered. Abandoning a quiz mid-way leaves
// no session record, but grades already applied stay persisted.
type Quiz struct {
	engine       *Engine
	collectionID string
	mode         domain.Mode
	direction    domain.Direction
	cards        []domain.ReviewCard
	index        int
	results      []domain.ItemResult
	startedAt    int64
	state        State
}

// StartQuiz selects cards for the collection and returns a quiz over
// them. If nothing qualifies the quiz starts (and stays) Empty.
func (e *Engine) StartQuiz(ctx context.Context, collection *domain.Collection, mode domain.Mode, direction domain.Direction) (*Quiz, error) {
	cards, err := e.SelectCards(ctx, collection.ID, direction, collection.Items)
	if err != nil {
		return nil, err
	}

	q := &Quiz{
		engine:       e,
		collectionID: collection.ID,
		mode:         mode,
		direction:    direction,
		cards:        cards,
		startedAt:    e.now(),
		state:        InProgress,
	}
	if len(cards) == 0 {
		q.state = Empty
	}
	return q, nil
}

// State returns the current machine state.
func (q *Quiz) State() State { return q.state }

// TotalCards returns the size of the card sequence.
func (q *Quiz) TotalCards() int { return len(q.cards) }

// Index returns the zero-based cursor position.
func (q *Quiz) Index() int { return q.index }

// Results returns the accumulated per-card results so far.
func (q *Quiz) Results() []domain.ItemResult { return q.results }

// CurrentCard returns the card awaiting an answer, or false when the
// quiz is not in progress.
func (q *Quiz) CurrentCard() (domain.ReviewCard, bool) {
	if q.state != InProgress || q.index >= len(q.cards) {
		return domain.ReviewCard{}, false
	}
	return q.cards[q.index], true
}

// Answer grades the current card with the given quality, records the
// result, and advances. When the last card is answered the completed
// session is persisted and the quiz transitions to Complete.
func (q *Quiz) Answer(ctx context.Context, quality int, userAnswer string, timeSpentMs int64) error {
	if q.state != InProgress || q.index >= len(q.cards) {
		return ErrQuizFinished
	}

	card := q.cards[q.index]
	updated, err := q.engine.ApplyGrade(ctx, card, quality)
	if err != nil {
		return err
	}
	q.cards[q.index] = updated

	q.results = append(q.results, domain.ItemResult{
		ItemID:      card.ItemID,
		Correct:     quality >= 3,
		UserAnswer:  userAnswer,
		TimeSpentMs: timeSpentMs,
	})
	q.index++

	if q.index < len(q.cards) {
		return nil
	}

	correct := 0
	for _, r := range q.results {
		if r.Correct {
			correct++
		}
	}
	record := domain.QuizSession{
		ID:             q.engine.store.NewID(),
		CollectionID:   q.collectionID,
		Mode:           q.mode,
		Direction:      q.direction,
		StartedAt:      q.startedAt,
		CompletedAt:    q.engine.now(),
		TotalCards:     len(q.cards),
		CorrectCount:   correct,
		IncorrectCount: len(q.results) - correct,
		ItemResults:    q.results,
	}
	if err := q.engine.store.SaveSession(ctx, record); err != nil {
		return err
	}
	q.state = Complete
	return nil
}
