package health

import "dietplanner/internal/metabolic"

type Category string

const (
	Unknown     Category = "Unknown"
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Verdict is the advisor's reading of a BMI figure.
type Verdict struct {
	Category      Category       `json:"category"`
	Advice        string         `json:"advice,omitempty"`
	SuggestedGoal metabolic.Goal `json:"suggested_goal,omitempty"`
}

var verdicts = map[Category]Verdict{
	Underweight: {
		Category:      Underweight,
		Advice:        "You need to gain weight. Focus on a calorie surplus (about 500 kcal/day for ~0.5 kg gain per week).",
		SuggestedGoal: metabolic.Gain,
	},
	Normal: {
		Category:      Normal,
		Advice:        "Great! Maintain your current weight with a balanced diet and regular exercise.",
		SuggestedGoal: metabolic.Maintain,
	},
	Overweight: {
		Category:      Overweight,
		Advice:        "You need to lose weight. Follow a calorie deficit (500 kcal/day is ~0.5 kg loss per week).",
		SuggestedGoal: metabolic.Lose,
	},
	Obese: {
		Category:      Obese,
		Advice:        "Consult a healthcare provider. Start with a 500 kcal/day deficit and aim for ~0.5 kg loss per week.",
		SuggestedGoal: metabolic.Lose,
	},
}

// CategoryOf buckets a BMI value. Non-positive BMI is Unknown.
func CategoryOf(bmi float64) Category {
	switch {
	case bmi <= 0:
		return Unknown
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// Classify returns the category and its fixed advice.
func Classify(bmi float64) Verdict {
	c := CategoryOf(bmi)
	if v, ok := verdicts[c]; ok {
		return v
	}
	return Verdict{Category: Unknown}
}
