// Package parser reads plain-text deck files into collections of
// prompt-match items.
package parser

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/justvibes99/enumerate/internal/domain"
)

const (
	promptPrefix = "P:"
	matchPrefix  = "M:"
	titlePrefix  = "# "
)

type state int

const (
	seeking state = iota
	readingPrompt
	readingMatch
)

// Deck is one parsed deck file before it becomes a stored collection.
type Deck struct {
	Title string
	Items []domain.Item
}

// ParseFile reads a deck from the given path. The deck title defaults to
// the file name without extension when the file has no `# ` header.
func ParseFile(path string) (*Deck, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	deck, err := Parse(file)
	if err != nil {
		return nil, err
	}
	if deck.Title == "" {
		base := filepath.Base(path)
		deck.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return deck, nil
}

// Parse reads a deck from r. Items are `P:` / `M:` line pairs; both
// sides may span multiple lines, and `---` ends an item early. An item
// missing either side is dropped. Item ids are content hashes, so the
// same pair keeps its id across repeated syncs.
func Parse(r io.Reader) (*Deck, error) {
	scanner := bufio.NewScanner(r)
	deck := &Deck{}

	var prompt, match []string
	currentState := seeking

	finishItem := func() {
		p := strings.TrimSpace(strings.Join(prompt, "\n"))
		m := strings.TrimSpace(strings.Join(match, "\n"))
		if p != "" && m != "" {
			item := domain.Item{Prompt: p, Match: m}
			item.ID = ItemID(item)
			deck.Items = append(deck.Items, item)
		}
		prompt = nil
		match = nil
		currentState = seeking
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "---":
			finishItem()
		case currentState == seeking && len(deck.Items) == 0 && deck.Title == "" && strings.HasPrefix(line, titlePrefix):
			deck.Title = strings.TrimSpace(line[len(titlePrefix):])
		case strings.HasPrefix(line, promptPrefix):
			if currentState != seeking {
				// A new prompt always starts a new item.
				finishItem()
			}
			currentState = readingPrompt
			prompt = append(prompt, strings.TrimPrefix(line[len(promptPrefix):], " "))
		case strings.HasPrefix(line, matchPrefix):
			currentState = readingMatch
			match = append(match, strings.TrimPrefix(line[len(matchPrefix):], " "))
		case currentState == readingPrompt:
			prompt = append(prompt, line)
		case currentState == readingMatch:
			match = append(match, line)
		}
	}
	finishItem()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return deck, nil
}
