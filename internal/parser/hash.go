package parser

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/justvibes99/enumerate/internal/domain"
)

// normalizeContent cleans one side of an item for hashing: lowercase,
// trimmed, with line endings normalized.
func normalizeContent(part string) string {
	p := strings.ToLower(part)
	p = strings.TrimSpace(p)
	return strings.ReplaceAll(p, "\r\n", "\n")
}

// ItemID derives a stable id from an item's content. The sides are
// joined with a newline so "ab"+"c" and "a"+"bc" hash differently.
func ItemID(item domain.Item) string {
	normalized := normalizeContent(item.Prompt) + "\n" + normalizeContent(item.Match)
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", sum[:16])
}
