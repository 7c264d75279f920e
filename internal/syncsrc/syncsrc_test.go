package syncsrc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/justvibes99/enumerate/internal/store"
)

func TestIsGitURL(t *testing.T) {
	testCases := []struct {
		path string
		want bool
	}{
		{"https://example.com/decks.git", true},
		{"git@example.com:user/decks.git", true},
		{"https://example.com/decks", true},
		{"/home/user/decks", false},
		{"./decks", false},
	}
	for _, tc := range testCases {
		if got := IsGitURL(tc.path); got != tc.want {
			t.Errorf("IsGitURL(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestGitURLToLocalPath(t *testing.T) {
	base := "repos"

	got, err := gitURLToLocalPath(base, "https://example.com/user/decks.git")
	if err != nil {
		t.Fatalf("https url: %v", err)
	}
	if got != filepath.Join(base, "example.com", "user", "decks") {
		t.Errorf("unexpected path %q", got)
	}

	got, err = gitURLToLocalPath(base, "git@example.com:user/decks.git")
	if err != nil {
		t.Fatalf("scp url: %v", err)
	}
	if got != filepath.Join(base, "example.com", "user", "decks") {
		t.Errorf("unexpected path %q", got)
	}

	if _, err := gitURLToLocalPath(base, "not a url"); err == nil {
		t.Error("expected error for unparseable url")
	}
}

func TestRunReconcilesLocalSource(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	srcDir := t.TempDir()
	deck := "# Capitals\n\nP: France\nM: Paris\n---\nP: Japan\nM: Tokyo\n"
	if err := os.WriteFile(filepath.Join(srcDir, "capitals.deck"), []byte(deck), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	// Non-deck files are ignored.
	if err := os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("P: x\nM: y"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reposDir := filepath.Join(t.TempDir(), "repos")
	if err := Run(ctx, s, []string{srcDir}, reposDir); err != nil {
		t.Fatalf("run: %v", err)
	}

	collections, err := s.ListCollections(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(collections))
	}
	c := collections[0]
	if c.Title != "Capitals" || len(c.Items) != 2 {
		t.Errorf("unexpected collection %+v", c)
	}
	createdAt := c.CreatedAt

	// A second run updates content but keeps identity and creation time.
	deck2 := "# Capitals\n\nP: France\nM: Paris\n---\nP: Japan\nM: Tokyo\n---\nP: Italy\nM: Rome\n"
	if err := os.WriteFile(filepath.Join(srcDir, "capitals.deck"), []byte(deck2), 0o644); err != nil {
		t.Fatalf("rewrite deck: %v", err)
	}
	if err := Run(ctx, s, []string{srcDir}, reposDir); err != nil {
		t.Fatalf("second run: %v", err)
	}

	collections, err = s.ListCollections(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("expected 1 collection after resync, got %d", len(collections))
	}
	if len(collections[0].Items) != 3 {
		t.Errorf("expected 3 items after resync, got %d", len(collections[0].Items))
	}
	if collections[0].ID != c.ID {
		t.Errorf("collection id changed across syncs")
	}
	if collections[0].CreatedAt != createdAt {
		t.Errorf("creation time changed across syncs")
	}
}
