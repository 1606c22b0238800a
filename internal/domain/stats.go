package domain

type UserStats struct {
	WorkoutsCompleted int64 `json:"workouts_completed"`
	MinutesTrained    int   `json:"minutes_trained"`
	CurrentStreak     int   `json:"current_streak"`
	CaloriesToday     int   `json:"calories_today"`
}
