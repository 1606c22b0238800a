package metabolic

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mansoorceksport/titan/internal/domain"
)

// Units are matched leftmost-first, so "g" also matches inside words such as
// "egg" or "big". The estimator is a rough offline approximation.
const unitPattern = `(g|grams|cup|cups|tbsp|tablespoon|tsp|slice|slices|x|pcs|piece|egg|eggs)`

var (
	quantityRe = regexp.MustCompile(`([0-9]+\.?[0-9]*)\s*` + unitPattern)
	unitRe     = regexp.MustCompile(unitPattern)
)

type foodRow struct {
	keywords []string
	name     string
	kcal     float64
	protein  float64
	carbs    float64
	fats     float64
}

// Checked in order; the first keyword hit wins
var foodTable = []foodRow{
	{[]string{"egg"}, "Egg", 70, 6, 1, 5},
	{[]string{"chicken"}, "Chicken Breast (100g)", 165, 31, 0, 4},
	{[]string{"rice"}, "Cooked Rice (cup)", 205, 4, 45, 0},
	{[]string{"banana"}, "Banana", 105, 1, 27, 0},
	{[]string{"apple"}, "Apple", 95, 0, 25, 0},
	{[]string{"bread"}, "Bread (slice)", 80, 3, 14, 1},
	{[]string{"oat", "oatmeal"}, "Oatmeal (cup cooked)", 158, 6, 27, 3},
	{[]string{"olive oil"}, "Olive Oil (tbsp)", 119, 0, 0, 14},
	{[]string{"beef", "steak"}, "Beef (100g)", 250, 26, 0, 15},
}

var genericFood = foodRow{name: "Food (estimated)", kcal: 200, protein: 10, carbs: 20, fats: 8}

// cooked rice is about 130 kcal per 100 g against 205 per cup
const riceGramsPerCupRatio = 130.0 / 205.0

func (r foodRow) scaled(mult float64) domain.MacroEstimate {
	return domain.MacroEstimate{
		FoodName: r.name,
		MacroData: domain.MacroData{
			Calories: int(math.Round(r.kcal * mult)),
			Protein:  int(math.Round(r.protein * mult)),
			Carbs:    int(math.Round(r.carbs * mult)),
			Fats:     int(math.Round(r.fats * mult)),
		},
	}
}

func isGramUnit(unit string) bool {
	return unit == "g" || unit == "grams"
}

// EstimateMacrosFromText guesses macros from a query like "2 eggs" or
// "150g chicken". It never fails; unknown food gets a generic estimate.
func EstimateMacrosFromText(query string) domain.MacroEstimate {
	s := strings.ToLower(query)

	qty := 1.0
	if m := quantityRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			qty = v
		}
	}

	unit := ""
	if m := unitRe.FindStringSubmatch(s); m != nil {
		unit = m[1]
	}

	mult := 1.0
	if isGramUnit(unit) {
		mult = qty / 100
	} else if unit != "" {
		mult = qty
	}

	for _, row := range foodTable {
		for _, kw := range row.keywords {
			if !strings.Contains(s, kw) {
				continue
			}
			if row.name == "Cooked Rice (cup)" && strings.Contains(unit, "g") {
				return row.scaled(mult * riceGramsPerCupRatio)
			}
			return row.scaled(mult)
		}
	}

	if isGramUnit(unit) {
		return genericFood.scaled(mult)
	}
	return genericFood.scaled(1)
}
