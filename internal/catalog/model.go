package catalog

// DietType marks a food item as vegetarian or not.
type DietType string

const (
	Veg    DietType = "veg"
	NonVeg DietType = "nonveg"
)

func (d DietType) Valid() bool {
	return d == Veg || d == NonVeg
}

// Slot is one of the five meal categories of a daily plan.
type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snack     Slot = "snack"
	Drink     Slot = "drink"
)

// Slots lists every slot in plan order.
var Slots = []Slot{Breakfast, Lunch, Dinner, Snack, Drink}

func ParseSlot(s string) (Slot, error) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", ErrUnknownSlot
}

// FoodItem is one catalog entry
type FoodItem struct {
	Name     string   `json:"name" yaml:"name"`
	Quantity string   `json:"quantity" yaml:"quantity"`
	Calories int      `json:"calories" yaml:"calories"`
	Protein  float64  `json:"protein" yaml:"protein"`
	Carbs    float64  `json:"carbs" yaml:"carbs"`
	Fats     float64  `json:"fats" yaml:"fats"`
	Fiber    float64  `json:"fiber" yaml:"fiber"`
	Price    int      `json:"price" yaml:"price"`
	DietType DietType `json:"type" yaml:"type"`
	Recipe   string   `json:"recipe,omitempty" yaml:"recipe,omitempty"`
}
