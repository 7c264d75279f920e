package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/justvibes99/enumerate/internal/domain"
)

const sessionColumns = `id, collection_id, mode, direction, started_at, completed_at,
	total_cards, correct_count, incorrect_count, item_results`

// SaveSession appends a completed session record. Sessions are immutable:
// saving an id twice is a caller bug and fails on the primary key.
func (s *Store) SaveSession(ctx context.Context, sess domain.QuizSession) error {
	results, err := json.Marshal(sess.ItemResults)
	if err != nil {
		return fmt.Errorf("failed to encode results for session %s: %w", sess.ID, err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO sessions (id, collection_id, mode, direction, started_at, completed_at,
			total_cards, correct_count, incorrect_count, item_results)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		sess.ID, sess.CollectionID, string(sess.Mode), string(sess.Direction),
		sess.StartedAt, sess.CompletedAt, sess.TotalCards,
		sess.CorrectCount, sess.IncorrectCount, string(results),
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	return nil
}

// SessionsByCollection returns all sessions for one collection.
func (s *Store) SessionsByCollection(ctx context.Context, collectionID string) ([]domain.QuizSession, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions WHERE collection_id = ?
	`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for %s: %w", collectionID, err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// RecentSessions returns up to limit sessions, most recently completed
// first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]domain.QuizSession, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions ORDER BY completed_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// AllSessions returns every session in the store.
func (s *Store) AllSessions(ctx context.Context) ([]domain.QuizSession, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func scanSession(row rowScanner) (*domain.QuizSession, error) {
	var sess domain.QuizSession
	var mode, direction, results string
	err := row.Scan(
		&sess.ID, &sess.CollectionID, &mode, &direction, &sess.StartedAt, &sess.CompletedAt,
		&sess.TotalCards, &sess.CorrectCount, &sess.IncorrectCount, &results,
	)
	if err != nil {
		return nil, err
	}
	sess.Mode = domain.Mode(mode)
	sess.Direction = domain.Direction(direction)
	if err := json.Unmarshal([]byte(results), &sess.ItemResults); err != nil {
		return nil, fmt.Errorf("failed to decode results for session %s: %w", sess.ID, err)
	}
	return &sess, nil
}

func collectSessions(rows *sql.Rows) ([]domain.QuizSession, error) {
	var sessions []domain.QuizSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}
