package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSlot    = errors.New("unknown meal slot")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Catalog maps every slot to its ordered list of food items.
// It is built once and only ever read afterwards.
type Catalog struct {
	slots map[Slot][]FoodItem
}

// New copies the given slices into a fresh catalog and validates it.
func New(slots map[Slot][]FoodItem) (*Catalog, error) {
	c := &Catalog{slots: make(map[Slot][]FoodItem, len(Slots))}
	for slot, items := range slots {
		c.slots[slot] = append([]FoodItem(nil), items...)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Builtin returns the compiled-in catalog.
func Builtin() *Catalog {
	c, err := New(builtin)
	if err != nil {
		// compiled-in data is broken, nothing can recover from that
		panic(err)
	}
	return c
}

// Slice returns a copy of the items for slot, in catalog order.
func (c *Catalog) Slice(slot Slot) ([]FoodItem, error) {
	items, ok := c.slots[slot]
	if !ok {
		return nil, ErrUnknownSlot
	}
	return append([]FoodItem(nil), items...), nil
}

// All returns a copy of every slot.
func (c *Catalog) All() map[Slot][]FoodItem {
	out := make(map[Slot][]FoodItem, len(c.slots))
	for slot, items := range c.slots {
		out[slot] = append([]FoodItem(nil), items...)
	}
	return out
}

// Validate enforces the guarantees the selector relies on: exactly the five
// slots, none empty, each with at least one veg item, no negative figures.
func (c *Catalog) Validate() error {
	if len(c.slots) != len(Slots) {
		return fmt.Errorf("%w: expected %d slots, got %d", ErrInvalidCatalog, len(Slots), len(c.slots))
	}

	for _, slot := range Slots {
		items, ok := c.slots[slot]
		if !ok {
			return fmt.Errorf("%w: slot %q missing", ErrInvalidCatalog, slot)
		}
		if len(items) == 0 {
			return fmt.Errorf("%w: slot %q is empty", ErrInvalidCatalog, slot)
		}

		veg := 0
		for i, item := range items {
			if err := validateItem(item); err != nil {
				return fmt.Errorf("%w: %s[%d]: %v", ErrInvalidCatalog, slot, i, err)
			}
			if item.DietType == Veg {
				veg++
			}
		}
		if veg == 0 {
			return fmt.Errorf("%w: slot %q has no veg item", ErrInvalidCatalog, slot)
		}
	}

	return nil
}

func validateItem(item FoodItem) error {
	switch {
	case item.Name == "":
		return errors.New("name is empty")
	case !item.DietType.Valid():
		return fmt.Errorf("diet type %q", item.DietType)
	case item.Calories < 0, item.Price < 0:
		return errors.New("negative calories or price")
	case item.Protein < 0, item.Carbs < 0, item.Fats < 0, item.Fiber < 0:
		return errors.New("negative macro")
	}
	return nil
}

// Stats holds per-slot counts used by the catalog check tool.
type Stats struct {
	Slot   Slot `json:"slot"`
	Total  int  `json:"total"`
	Veg    int  `json:"veg"`
	NonVeg int  `json:"nonveg"`
}

func (c *Catalog) Stats() []Stats {
	out := make([]Stats, 0, len(Slots))
	for _, slot := range Slots {
		s := Stats{Slot: slot}
		for _, item := range c.slots[slot] {
			s.Total++
			if item.DietType == Veg {
				s.Veg++
			} else {
				s.NonVeg++
			}
		}
		out = append(out, s)
	}
	return out
}
