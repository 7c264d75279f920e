// Package domain contains the core data structures for the application,
// independent of the storage and CLI layers.
package domain

// Item is a single prompt-match pair within a collection.
type Item struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Match  string `json:"match"`
}

// Collection is a set of items that can be studied together.
type Collection struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PromptLabel string `json:"promptLabel"`
	MatchLabel  string `json:"matchLabel"`
	Items       []Item `json:"items"`
	IsBuiltIn   bool   `json:"isBuiltIn"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// FindItem returns the item with the given id, or nil if absent.
func (c *Collection) FindItem(itemID string) *Item {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
