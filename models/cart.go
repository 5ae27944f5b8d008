package models

import (
	"fmt"
	"sort"
	"strings"
)

// SelectedChoice is the {id, name} pair stored on a cart line for a composed
// item; duplicates are preserved (two scoops of the same flavor).
type SelectedChoice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LineOptions struct {
	SelectedChoices []SelectedChoice `json:"selectedChoices,omitempty"`
}

// CartLine is one line of the cart. Identity, display name and unit price are
// captured when the line is first created and never recomputed afterwards.
type CartLine struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
	Category string       `json:"category"`
	Image    string       `json:"image,omitempty"`
	Options  *LineOptions `json:"options,omitempty"`
}

// Cart holds the ordered lines of one storefront session. It is plain
// in-process state with no persistence; callers handle locking.
type Cart struct {
	lines []CartLine
}

// LineIdentity derives the cart key: the bare item id, or the item id joined
// with the sorted selected choice ids for a composed item, so that identical
// choice combinations collapse into one line and different ones stay apart.
func LineIdentity(itemID string, choices []SelectedChoice) string {
	if len(choices) == 0 {
		return itemID
	}
	ids := make([]string, len(choices))
	for i, ch := range choices {
		ids[i] = ch.ID
	}
	sort.Strings(ids)
	return itemID + "-" + strings.Join(ids, "-")
}

// DisplayName annotates the base name with the chosen choices, deduplicated
// and counted: "Glace 2 Boules (Vanille x2)". Unresolved (empty-name) entries
// are skipped.
func DisplayName(base string, choices []SelectedChoice) string {
	if len(choices) == 0 {
		return base
	}

	var order []string
	counts := make(map[string]int)
	for _, ch := range choices {
		if ch.Name == "" {
			continue
		}
		if counts[ch.Name] == 0 {
			order = append(order, ch.Name)
		}
		counts[ch.Name]++
	}
	if len(order) == 0 {
		return base
	}

	parts := make([]string, 0, len(order))
	for _, name := range order {
		if counts[name] > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", name, counts[name]))
		} else {
			parts = append(parts, name)
		}
	}

	return fmt.Sprintf("%s (%s)", base, strings.Join(parts, ", "))
}

// Add puts the item in the cart. If a line with the same identity already
// exists its quantity is incremented and name/price stay untouched; otherwise
// a new line is created with the given unit price (for composed items the
// caller computes it from the committed selection).
func (c *Cart) Add(item MenuItem, unitPrice float64, choices []SelectedChoice) CartLine {
	id := LineIdentity(item.ID, choices)

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}

	line := CartLine{
		ID:       id,
		Name:     DisplayName(item.Name, choices),
		Price:    unitPrice,
		Quantity: 1,
		Category: item.Category,
		Image:    item.Image,
	}
	if len(choices) > 0 {
		line.Options = &LineOptions{SelectedChoices: choices}
	}
	c.lines = append(c.lines, line)
	return line
}

// UpdateQuantity sets a line's quantity exactly; zero or less removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes a line by identity; unknown ids are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}
