package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/justvibes99/enumerate/internal/domain"
)

// ExportDocument is the single JSON document produced by Export and
// consumed by Import. Field names match the on-disk format exactly.
type ExportDocument struct {
	DataSets     []domain.Collection  `json:"datasets" validate:"dive"`
	ReviewCards  []domain.ReviewCard  `json:"reviewCards" validate:"dive"`
	QuizSessions []domain.QuizSession `json:"quizSessions" validate:"dive"`
	Settings     *domain.AppSettings  `json:"settings,omitempty"`
	ExportedAt   int64                `json:"exportedAt"`
}

var validate = validator.New()

// Export collects the full store contents into one document.
func (s *Store) Export(ctx context.Context) (*ExportDocument, error) {
	collections, err := s.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := s.AllReviewCards(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.AllSessions(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportDocument{
		DataSets:     collections,
		ReviewCards:  cards,
		QuizSessions: sessions,
		Settings:     &settings,
		ExportedAt:   time.Now().UnixMilli(),
	}, nil
}

// ExportJSON serializes the full store contents as indented JSON.
func (s *Store) ExportJSON(ctx context.Context) ([]byte, error) {
	doc, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return b, nil
}

// Import merges a document into the store by primary key: every record
// in the document overwrites any existing record with the same id, and
// records not present are left untouched. The whole merge is one
// transaction.
func (s *Store) Import(ctx context.Context, doc *ExportDocument) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, c := range doc.DataSets {
		items, err := json.Marshal(c.Items)
		if err != nil {
			return fmt.Errorf("failed to encode items for collection %s: %w", c.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO collections (id, title, description, prompt_label, match_label, items, is_built_in, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				description = excluded.description,
				prompt_label = excluded.prompt_label,
				match_label = excluded.match_label,
				items = excluded.items,
				is_built_in = excluded.is_built_in,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at
		`,
			c.ID, c.Title, c.Description, c.PromptLabel, c.MatchLabel,
			string(items), boolToInt(c.IsBuiltIn), c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import collection %s: %w", c.ID, err)
		}
	}

	for _, c := range doc.ReviewCards {
		if _, err := tx.ExecContext(ctx, upsertCardSQL, cardArgs(c)...); err != nil {
			return fmt.Errorf("failed to import review card %s: %w", c.ID, err)
		}
	}

	for _, sess := range doc.QuizSessions {
		results, err := json.Marshal(sess.ItemResults)
		if err != nil {
			return fmt.Errorf("failed to encode results for session %s: %w", sess.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sessions (id, collection_id, mode, direction, started_at, completed_at,
				total_cards, correct_count, incorrect_count, item_results)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				collection_id = excluded.collection_id,
				mode = excluded.mode,
				direction = excluded.direction,
				started_at = excluded.started_at,
				completed_at = excluded.completed_at,
				total_cards = excluded.total_cards,
				correct_count = excluded.correct_count,
				incorrect_count = excluded.incorrect_count,
				item_results = excluded.item_results
		`,
			sess.ID, sess.CollectionID, string(sess.Mode), string(sess.Direction),
			sess.StartedAt, sess.CompletedAt, sess.TotalCards,
			sess.CorrectCount, sess.IncorrectCount, string(results),
		)
		if err != nil {
			return fmt.Errorf("failed to import session %s: %w", sess.ID, err)
		}
	}

	if doc.Settings != nil {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settings (id, new_cards_per_day)
			VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET new_cards_per_day = excluded.new_cards_per_day
		`, settingsKey, doc.Settings.NewCardsPerDay)
		if err != nil {
			return fmt.Errorf("failed to import settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// ImportJSON parses and merges a JSON export document.
func (s *Store) ImportJSON(ctx context.Context, data []byte) error {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.Import(ctx, &doc)
}
