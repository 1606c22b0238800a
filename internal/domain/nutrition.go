package domain

import (
	"context"
	"time"
)

// MaxMacroValue is the largest macro value accepted for persistence
const MaxMacroValue = 32767

type MealType string

const (
	MealBreakfast      MealType = "Breakfast"
	MealBreakfastSnack MealType = "Breakfast Snack"
	MealLunch          MealType = "Lunch"
	MealLunchSnack     MealType = "Lunch Snack"
	MealDinner         MealType = "Dinner"
	MealDinnerSnack    MealType = "Dinner Snack"
)

var mealTypes = map[MealType]bool{
	MealBreakfast:      true,
	MealBreakfastSnack: true,
	MealLunch:          true,
	MealLunchSnack:     true,
	MealDinner:         true,
	MealDinnerSnack:    true,
}

// Valid reports whether m is one of the known meal types
func (m MealType) Valid() bool {
	return mealTypes[m]
}

type MacroData struct {
	Calories int `json:"calories" bson:"calories"`
	Protein  int `json:"protein" bson:"protein"`
	Carbs    int `json:"carbs" bson:"carbs"`
	Fats     int `json:"fats" bson:"fats"`
}

// MacroEstimate is a macro estimate for a free-text food query
type MacroEstimate struct {
	MacroData
	FoodName string `json:"food_name"`
}

type FoodLogEntry struct {
	ID        string    `json:"id" bson:"_id"`
	ProfileID string    `json:"profile_id" bson:"profile_id"`
	FoodName  string    `json:"food_name" bson:"food_name"`
	Macros    MacroData `json:"macros" bson:"macros"`
	Meal      MealType  `json:"meal" bson:"meal"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type DailyTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// DailyLog is a day's entries with their totals
type DailyLog struct {
	Entries []*FoodLogEntry `json:"entries"`
	Totals  DailyTotals     `json:"totals"`
}

type NutritionLogRepository interface {
	Create(ctx context.Context, entry *FoodLogEntry) error
	// ListBetween returns entries with from <= timestamp < to, oldest first
	ListBetween(ctx context.Context, profileID string, from, to time.Time) ([]*FoodLogEntry, error)
}
