// Package syncsrc reconciles configured deck sources into the store.
// A source is either a local directory of .deck files or a git
// repository URL, cloned under the repos directory first.
package syncsrc

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/justvibes99/enumerate/internal/domain"
	"github.com/justvibes99/enumerate/internal/gitsource"
	"github.com/justvibes99/enumerate/internal/parser"
	"github.com/justvibes99/enumerate/internal/store"
)

const deckExt = ".deck"

// IsGitURL reports whether a source path should be treated as a git
// repository rather than a local directory.
func IsGitURL(path string) bool {
	return strings.HasSuffix(path, ".git") ||
		strings.HasPrefix(path, "git@") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "http://")
}

// Run reconciles every configured source. Sources that fail are logged
// and skipped so one broken repository does not block the rest.
func Run(ctx context.Context, s *store.Store, sources []string, reposDir string) error {
	if len(sources) == 0 {
		slog.Info("no deck sources configured")
		return nil
	}

	if err := os.MkdirAll(reposDir, 0o755); err != nil {
		return fmt.Errorf("failed to create repos directory: %w", err)
	}

	for _, source := range sources {
		slog.Info("syncing source", "path", source)

		dir := source
		if IsGitURL(source) {
			localPath, err := gitURLToLocalPath(reposDir, source)
			if err != nil {
				slog.Error("cannot determine local path for git source", "url", source, "error", err)
				continue
			}
			if err := gitsource.Sync(source, localPath); err != nil {
				slog.Error("git sync failed", "url", source, "error", err)
				continue
			}
			dir = localPath
		}

		if err := reconcileDir(ctx, s, source, dir); err != nil {
			slog.Error("source reconcile failed", "path", source, "error", err)
		}
	}
	return nil
}

// reconcileDir walks a directory for .deck files and upserts one
// collection per deck. Source-owned collections are fully replaced on
// each sync: the deck file is the authority for their content.
func reconcileDir(ctx context.Context, s *store.Store, source, dir string) error {
	var decks, parseErrors int

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), deckExt) {
			return nil
		}

		deck, parseErr := parser.ParseFile(path)
		if parseErr != nil {
			parseErrors++
			slog.Warn("deck parse failed", "path", path, "error", parseErr)
			return nil
		}
		if len(deck.Items) == 0 {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		id := collectionID(source, rel)
		now := time.Now().UnixMilli()

		collection := domain.Collection{
			ID:          id,
			Title:       deck.Title,
			Description: fmt.Sprintf("Synced from %s", source),
			Items:       deck.Items,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if existing, err := s.GetCollection(ctx, id); err == nil {
			collection.CreatedAt = existing.CreatedAt
		}
		if err := s.SaveCollection(ctx, collection); err != nil {
			return err
		}
		decks++
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("failed to walk %s: %w", dir, walkErr)
	}

	slog.Info("source reconciled", "path", source, "decks", decks, "parse_errors", parseErrors)
	return nil
}

// collectionID derives a stable id from the source and the deck file's
// relative path, so repeated syncs hit the same collection.
func collectionID(source, relPath string) string {
	sum := sha256.Sum256([]byte(source + "\n" + relPath))
	return fmt.Sprintf("src-%x", sum[:8])
}

func gitURLToLocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err != nil || (parsedURL.Scheme != "https" && parsedURL.Scheme != "http") {
		// scp-like syntax: git@host:user/repo.git
		if strings.Contains(repoURL, "@") {
			parts := strings.SplitN(repoURL, ":", 2)
			if len(parts) == 2 {
				hostAndUser := strings.SplitN(parts[0], "@", 2)
				if len(hostAndUser) == 2 {
					repoPath := strings.TrimSuffix(parts[1], ".git")
					return filepath.Join(baseDir, hostAndUser[1], repoPath), nil
				}
			}
		}
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	sanitized := strings.TrimSuffix(parsedURL.Path, ".git")
	return filepath.Join(baseDir, parsedURL.Host, sanitized), nil
}
