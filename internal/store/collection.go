package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/justvibes99/enumerate/internal/domain"
)

// SaveCollection inserts or replaces a collection by id.
func (s *Store) SaveCollection(ctx context.Context, c domain.Collection) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items for collection %s: %w", c.ID, err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO collections (id, title, description, prompt_label, match_label, items, is_built_in, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			prompt_label = excluded.prompt_label,
			match_label = excluded.match_label,
			items = excluded.items,
			is_built_in = excluded.is_built_in,
			updated_at = excluded.updated_at
	`,
		c.ID, c.Title, c.Description, c.PromptLabel, c.MatchLabel,
		string(items), boolToInt(c.IsBuiltIn), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", c.ID, err)
	}
	return nil
}

// GetCollection retrieves a collection by id. Returns ErrNotFound if no
// such collection exists.
func (s *Store) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, title, description, prompt_label, match_label, items, is_built_in, created_at, updated_at
		FROM collections WHERE id = ?
	`, id)

	c, err := scanCollection(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("collection %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get collection %s: %w", id, err)
	}
	return c, nil
}

// ListCollections returns all collections ordered by last update,
// newest first.
func (s *Store) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, title, description, prompt_label, match_label, items, is_built_in, created_at, updated_at
		FROM collections ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		collections = append(collections, *c)
	}
	return collections, rows.Err()
}

// DeleteCollection removes a collection together with its review cards
// (both directions) and sessions in one transaction. A failure leaves
// everything in place.
func (s *Store) DeleteCollection(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cascade delete for %s: %w", id, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("collection %s: %w", id, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM review_cards WHERE collection_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete review cards for %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE collection_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete sessions for %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cascade delete for %s: %w", id, err)
	}
	return nil
}

// EnsureInitialized seeds the given built-in collections, skipping any id
// that already exists. The check is id presence, not content equality, so
// a collection the user has edited is never overwritten. Safe to call on
// every startup.
func (s *Store) EnsureInitialized(ctx context.Context, builtIn []domain.Collection) error {
	rows, err := s.conn.QueryContext(ctx, `SELECT id FROM collections`)
	if err != nil {
		return fmt.Errorf("failed to list existing collection ids: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan collection id: %w", err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list existing collection ids: %w", err)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range builtIn {
		if existing[c.ID] {
			continue
		}
		items, err := json.Marshal(c.Items)
		if err != nil {
			return fmt.Errorf("failed to encode items for built-in %s: %w", c.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO collections (id, title, description, prompt_label, match_label, items, is_built_in, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			c.ID, c.Title, c.Description, c.PromptLabel, c.MatchLabel,
			string(items), boolToInt(c.IsBuiltIn), c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed built-in %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (*domain.Collection, error) {
	var c domain.Collection
	var items string
	var builtIn int
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.PromptLabel, &c.MatchLabel,
		&items, &builtIn, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &c.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items for collection %s: %w", c.ID, err)
	}
	c.IsBuiltIn = builtIn != 0
	return &c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
