package models

import (
	"fmt"
)

// Choice is one pickable sub-option of a composed menu item (an ice cream
// flavor, a soda brand). Each choice carries its own price; a composed item's
// unit price is the sum of the prices of the selected choices.
type Choice struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price,omitempty"`
}

// ItemOptions marks a menu item as composed: the customer has to pick exactly
// RequiredSelections choices from AvailableChoices before it can go in the cart.
type ItemOptions struct {
	IsComposed         bool     `json:"isComposed,omitempty"`
	RequiredSelections int      `json:"requiredSelections,omitempty"`
	AvailableChoices   []Choice `json:"availableChoices,omitempty"`
}

// MenuItem is a catalog entry. The catalog is static and never mutated at
// runtime; prices on cart lines are captured at add time.
type MenuItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	Category     string       `json:"category"`
	Image        string       `json:"image,omitempty"`
	IsSpicy      bool         `json:"isSpicy,omitempty"`
	IsVegetarian bool         `json:"isVegetarian,omitempty"`
	Options      *ItemOptions `json:"options,omitempty"`
}

func (m MenuItem) IsComposed() bool {
	return m.Options != nil && m.Options.IsComposed
}

// FindChoice resolves a choice id against the item's available choices.
func (m MenuItem) FindChoice(id string) (Choice, bool) {
	if m.Options == nil {
		return Choice{}, false
	}
	for _, ch := range m.Options.AvailableChoices {
		if ch.ID == id {
			return ch, true
		}
	}
	return Choice{}, false
}

// ChoiceSelector drives the flavor picker for a composed item. The selection
// is an ordered list of choice ids, bounded by the item's required count; the
// same id may appear several times (two scoops of vanilla).
type ChoiceSelector struct {
	item     MenuItem
	selected []string
}

func NewChoiceSelector(item MenuItem) *ChoiceSelector {
	return &ChoiceSelector{item: item}
}

// Toggle appends the choice while the quota is not reached. Once the quota is
// full it removes the last occurrence of that id instead, so one unit of a
// flavor can be swapped out; toggling an unselected id at quota is a no-op.
func (s *ChoiceSelector) Toggle(choiceID string) {
	required := 0
	if s.item.Options != nil {
		required = s.item.Options.RequiredSelections
	}

	if len(s.selected) < required {
		s.selected = append(s.selected, choiceID)
		return
	}

	for i := len(s.selected) - 1; i >= 0; i-- {
		if s.selected[i] == choiceID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}

// Selected returns the current selection in pick order.
func (s *ChoiceSelector) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Ready reports whether the selection is complete and the item can be added.
func (s *ChoiceSelector) Ready() bool {
	return s.item.Options != nil && len(s.selected) == s.item.Options.RequiredSelections
}

// Commit resolves the selection into the effective unit price and the
// {id, name} list handed to the cart. Choice ids that no longer resolve are
// dropped from the name list and priced at zero.
func (s *ChoiceSelector) Commit() (float64, []SelectedChoice, error) {
	if !s.Ready() {
		required := 0
		if s.item.Options != nil {
			required = s.item.Options.RequiredSelections
		}
		return 0, nil, fmt.Errorf("selection incomplete: %d of %d choices picked", len(s.selected), required)
	}

	var price float64
	choices := make([]SelectedChoice, 0, len(s.selected))
	for _, id := range s.selected {
		ch, ok := s.item.FindChoice(id)
		if !ok {
			continue
		}
		price += ch.Price
		choices = append(choices, SelectedChoice{ID: ch.ID, Name: ch.Name})
	}

	return price, choices, nil
}
