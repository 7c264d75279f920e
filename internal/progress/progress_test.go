package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/justvibes99/enumerate/internal/domain"
	"github.com/justvibes99/enumerate/internal/store"
)

func newTestAggregator(t *testing.T) (*Aggregator, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s), s
}

func sessionOn(id string, collectionID string, completed time.Time) domain.QuizSession {
	return domain.QuizSession{
		ID:           id,
		CollectionID: collectionID,
		Mode:         domain.Flashcard,
		Direction:    domain.Forward,
		StartedAt:    completed.Add(-5 * time.Minute).UnixMilli(),
		CompletedAt:  completed.UnixMilli(),
		TotalCards:   1,
		CorrectCount: 1,
	}
}

func TestStreaks(t *testing.T) {
	loc := time.UTC
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 30, 14, 0, 0, 0, loc).AddDate(0, 0, offset)
	}

	// Sessions on D, D-1, D-2, and an isolated one on D-10.
	var sessions []domain.QuizSession
	for i, offset := range []int{0, -1, -2, -10} {
		sessions = append(sessions, sessionOn(string(rune('a'+i)), "set1", day(offset)))
	}

	t.Run("evaluated on day D", func(t *testing.T) {
		current, longest := Streaks(sessions, day(0))
		if current != 3 {
			t.Errorf("current = %d, want 3", current)
		}
		if longest != 3 {
			t.Errorf("longest = %d, want 3", longest)
		}
	})

	t.Run("evaluated on day D+1 keeps grace", func(t *testing.T) {
		current, _ := Streaks(sessions, day(1))
		if current != 3 {
			t.Errorf("current = %d, want 3 (yesterday grace)", current)
		}
	})

	t.Run("evaluated on day D+2 breaks streak", func(t *testing.T) {
		current, longest := Streaks(sessions, day(2))
		if current != 0 {
			t.Errorf("current = %d, want 0", current)
		}
		if longest != 3 {
			t.Errorf("longest = %d, want 3", longest)
		}
	})

	t.Run("no sessions", func(t *testing.T) {
		current, longest := Streaks(nil, day(0))
		if current != 0 || longest != 0 {
			t.Errorf("got %d/%d, want 0/0", current, longest)
		}
	})

	t.Run("multiple sessions one day count once", func(t *testing.T) {
		doubled := append([]domain.QuizSession{}, sessions...)
		doubled = append(doubled, sessionOn("x", "set1", day(0).Add(2*time.Hour)))
		current, _ := Streaks(doubled, day(0))
		if current != 3 {
			t.Errorf("current = %d, want 3", current)
		}
	})

	t.Run("incomplete sessions ignored", func(t *testing.T) {
		open := sessionOn("y", "set1", day(0))
		open.CompletedAt = 0
		current, longest := Streaks([]domain.QuizSession{open}, day(0))
		if current != 0 || longest != 0 {
			t.Errorf("got %d/%d, want 0/0", current, longest)
		}
	})
}

func TestSetProgressClassification(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAggregator(t)

	collection := domain.Collection{
		ID:    "set1",
		Title: "Set 1",
		Items: []domain.Item{
			{ID: "mastered", Prompt: "p", Match: "m"},
			{ID: "learning", Prompt: "p", Match: "m"},
			{ID: "failed-back-to-zero", Prompt: "p", Match: "m"},
			{ID: "never-seen", Prompt: "p", Match: "m"},
		},
		CreatedAt: 1, UpdatedAt: 1,
	}
	if err := s.SaveCollection(ctx, collection); err != nil {
		t.Fatalf("save: %v", err)
	}

	mastered := domain.NewReviewCard("set1", "mastered", domain.Forward)
	mastered.Interval = 30
	mastered.LastReviewedAt = 5000

	learning := domain.NewReviewCard("set1", "learning", domain.Forward)
	learning.Interval = 6
	learning.LastReviewedAt = 9000

	// Reviewed and failed: repetitions 0 but lastReviewedAt > 0, so it is
	// learning, not new.
	failed := domain.NewReviewCard("set1", "failed-back-to-zero", domain.Forward)
	failed.Interval = 1
	failed.LastReviewedAt = 7000

	fresh := domain.NewReviewCard("set1", "never-seen", domain.Forward)

	if err := s.BatchUpsertReviewCards(ctx, []domain.ReviewCard{mastered, learning, failed, fresh}); err != nil {
		t.Fatalf("batch: %v", err)
	}

	p, err := a.SetProgress(ctx, "set1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalItems != 4 {
		t.Errorf("totalItems = %d, want 4", p.TotalItems)
	}
	if p.MasteredCount != 1 || p.LearningCount != 2 || p.NewCount != 1 {
		t.Errorf("classification = %d/%d/%d, want 1/2/1", p.MasteredCount, p.LearningCount, p.NewCount)
	}
	if p.LastStudiedAt != 9000 {
		t.Errorf("lastStudiedAt = %d, want 9000", p.LastStudiedAt)
	}
}

func TestGlobalProgress(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAggregator(t)

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	// Mastered cards are scheduled well into the future so only the
	// overdue card below counts as due.
	mastered1 := domain.NewReviewCard("set1", "a", domain.Forward)
	mastered1.Interval = 25
	mastered1.LastReviewedAt = 1
	mastered1.NextReviewDate = now.AddDate(0, 0, 25).UnixMilli()

	mastered2 := domain.NewReviewCard("set2", "a", domain.Reverse)
	mastered2.Interval = 21
	mastered2.LastReviewedAt = 1
	mastered2.NextReviewDate = now.AddDate(0, 0, 21).UnixMilli()

	due := domain.NewReviewCard("set1", "b", domain.Forward)
	due.Interval = 3
	due.LastReviewedAt = now.Add(-72 * time.Hour).UnixMilli()
	due.NextReviewDate = now.Add(-time.Hour).UnixMilli()

	if err := s.BatchUpsertReviewCards(ctx, []domain.ReviewCard{mastered1, mastered2, due}); err != nil {
		t.Fatalf("batch: %v", err)
	}

	// Sessions across two collections on consecutive days still form one
	// global streak.
	if err := s.SaveSession(ctx, sessionOn("s1", "set1", now)); err != nil {
		t.Fatalf("save session: %v", err)
	}
	if err := s.SaveSession(ctx, sessionOn("s2", "set2", now.AddDate(0, 0, -1))); err != nil {
		t.Fatalf("save session: %v", err)
	}

	g, err := a.GlobalProgress(ctx)
	if err != nil {
		t.Fatalf("global: %v", err)
	}
	if g.MasteredCount != 2 {
		t.Errorf("mastered = %d, want 2", g.MasteredCount)
	}
	if g.DueCount != 1 {
		t.Errorf("due = %d, want 1", g.DueCount)
	}
	if g.CurrentStreak != 2 || g.LongestStreak != 2 {
		t.Errorf("streaks = %d/%d, want 2/2", g.CurrentStreak, g.LongestStreak)
	}
}
