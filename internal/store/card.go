package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/justvibes99/enumerate/internal/domain"
)

const cardColumns = `id, item_id, collection_id, direction, ease_factor, interval_days,
	repetitions, next_review_date, correct_count, incorrect_count, last_reviewed_at`

// GetReviewCards returns all cards for one (collection, direction) pair.
func (s *Store) GetReviewCards(ctx context.Context, collectionID string, direction domain.Direction) ([]domain.ReviewCard, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT `+cardColumns+`
		FROM review_cards WHERE collection_id = ? AND direction = ?
	`, collectionID, string(direction))
	if err != nil {
		return nil, fmt.Errorf("failed to get review cards for %s/%s: %w", collectionID, direction, err)
	}
	defer rows.Close()

	return collectCards(rows)
}

// GetReviewCard retrieves a single card by its composite id. Returns
// ErrNotFound if the card does not exist.
func (s *Store) GetReviewCard(ctx context.Context, id string) (*domain.ReviewCard, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT `+cardColumns+`
		FROM review_cards WHERE id = ?
	`, id)

	c, err := scanCard(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("review card %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review card %s: %w", id, err)
	}
	return c, nil
}

// UpsertReviewCard inserts or replaces a single card by id.
func (s *Store) UpsertReviewCard(ctx context.Context, c domain.ReviewCard) error {
	_, err := s.conn.ExecContext(ctx, upsertCardSQL, cardArgs(c)...)
	if err != nil {
		return fmt.Errorf("failed to upsert review card %s: %w", c.ID, err)
	}
	return nil
}

// BatchUpsertReviewCards writes all cards in one transaction so a failure
// partway through leaves no partially-created set behind.
func (s *Store) BatchUpsertReviewCards(ctx context.Context, cards []domain.ReviewCard) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin card batch: %w", err)
	}
	defer tx.Rollback()

	for _, c := range cards {
		if _, err := tx.ExecContext(ctx, upsertCardSQL, cardArgs(c)...); err != nil {
			return fmt.Errorf("failed to upsert review card %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit card batch: %w", err)
	}
	return nil
}

// AllReviewCards returns every card in the store.
func (s *Store) AllReviewCards(ctx context.Context) ([]domain.ReviewCard, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT `+cardColumns+` FROM review_cards`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all review cards: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

// CountDueCards counts reviewed cards whose next review date has passed,
// across the whole store. now is epoch milliseconds.
func (s *Store) CountDueCards(ctx context.Context, now int64) (int, error) {
	var count int
	err := s.conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM review_cards
		WHERE last_reviewed_at > 0 AND next_review_date <= ?
	`, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count due cards: %w", err)
	}
	return count, nil
}

// DueCountByCollection returns, per collection, the number of reviewed
// cards whose next review date has passed. Collections with no due cards
// are omitted.
func (s *Store) DueCountByCollection(ctx context.Context, now int64) (map[string]int, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT collection_id, COUNT(*) FROM review_cards
		WHERE last_reviewed_at > 0 AND next_review_date <= ?
		GROUP BY collection_id
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count due cards by collection: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan due count row: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

const upsertCardSQL = `
	INSERT INTO review_cards (id, item_id, collection_id, direction, ease_factor, interval_days,
		repetitions, next_review_date, correct_count, incorrect_count, last_reviewed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		ease_factor = excluded.ease_factor,
		interval_days = excluded.interval_days,
		repetitions = excluded.repetitions,
		next_review_date = excluded.next_review_date,
		correct_count = excluded.correct_count,
		incorrect_count = excluded.incorrect_count,
		last_reviewed_at = excluded.last_reviewed_at
`

func cardArgs(c domain.ReviewCard) []any {
	return []any{
		c.ID, c.ItemID, c.CollectionID, string(c.Direction), c.EaseFactor, c.Interval,
		c.Repetitions, c.NextReviewDate, c.CorrectCount, c.IncorrectCount, c.LastReviewedAt,
	}
}

func scanCard(row rowScanner) (*domain.ReviewCard, error) {
	var c domain.ReviewCard
	var direction string
	err := row.Scan(
		&c.ID, &c.ItemID, &c.CollectionID, &direction, &c.EaseFactor, &c.Interval,
		&c.Repetitions, &c.NextReviewDate, &c.CorrectCount, &c.IncorrectCount, &c.LastReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Direction = domain.Direction(direction)
	return &c, nil
}

func collectCards(rows *sql.Rows) ([]domain.ReviewCard, error) {
	var cards []domain.ReviewCard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review card row: %w", err)
		}
		cards = append(cards, *c)
	}
	return cards, rows.Err()
}
