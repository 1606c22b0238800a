package metabolic

import (
	"math"

	"github.com/mansoorceksport/titan/internal/domain"
)

// AggregateDailyTotals sums the macros of entries
func AggregateDailyTotals(entries []*domain.FoodLogEntry) domain.DailyTotals {
	var t domain.DailyTotals
	for _, e := range entries {
		if e == nil {
			continue
		}
		t.Calories += e.Macros.Calories
		t.Protein += e.Macros.Protein
		t.Carbs += e.Macros.Carbs
		t.Fats += e.Macros.Fats
	}
	return t
}

// ClampMacro rounds v and bounds it to what the log store accepts
func ClampMacro(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > domain.MaxMacroValue {
		return domain.MaxMacroValue
	}
	return int(r)
}

// ClampMacros applies ClampMacro to every field
func ClampMacros(m domain.MacroData) domain.MacroData {
	return domain.MacroData{
		Calories: ClampMacro(float64(m.Calories)),
		Protein:  ClampMacro(float64(m.Protein)),
		Carbs:    ClampMacro(float64(m.Carbs)),
		Fats:     ClampMacro(float64(m.Fats)),
	}
}
