package domain

import (
	"encoding/json"
)

// Focus is the muscle-group grouping trained on a day
type Focus string

const (
	FocusPush     Focus = "Push"
	FocusPull     Focus = "Pull"
	FocusLegs     Focus = "Legs"
	FocusUpper    Focus = "Upper"
	FocusLower    Focus = "Lower"
	FocusFullBody Focus = "Full Body"
	FocusRest     Focus = "Rest"
)

// Focus labels accepted from clients that do not name a single day
const (
	FocusLabelFullWeeklyPlan  = "Full Weekly Plan"
	FocusLabelFullBodySession = "Full Body Session"
)

// RecoveryExercise is the only entry of a rest day
const RecoveryExercise = "Recovery"

// SplitStrategy is a weekly training philosophy, stored with its display label
type SplitStrategy string

const (
	SplitPushPullLegs SplitStrategy = "Push / Pull / Legs"
	SplitUpperLower   SplitStrategy = "Upper / Lower"
	SplitBroSplit     SplitStrategy = "Body Part Split (Bro Split)"
	SplitFullBody     SplitStrategy = "Full Body"
	SplitCustom       SplitStrategy = "Custom / Mixed"
)

type FitnessGoal string

const (
	GoalWeightLoss    FitnessGoal = "Weight Loss (Cut)"
	GoalMuscleGain    FitnessGoal = "Muscle Gain (Hypertrophy)"
	GoalStrength      FitnessGoal = "Strength Training"
	GoalEndurance     FitnessGoal = "Endurance / Cardio"
	GoalFlexibility   FitnessGoal = "Flexibility / Mobility"
	GoalGeneralHealth FitnessGoal = "General Health"
)

// Weekdays in schedule order
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ExercisePrescription is one exercise of a session
type ExercisePrescription struct {
	Name  string `json:"name" bson:"name"`
	Sets  string `json:"sets" bson:"sets"`
	Reps  string `json:"reps" bson:"reps"`
	Rest  string `json:"rest" bson:"rest"`
	Notes string `json:"notes" bson:"notes"`
}

type SessionPlan struct {
	Title           string                 `json:"title" bson:"title"`
	DurationMinutes int                    `json:"duration_minutes" bson:"duration_minutes"`
	Difficulty      string                 `json:"difficulty" bson:"difficulty"`
	Exercises       []ExercisePrescription `json:"exercises" bson:"exercises"`
	Warmup          string                 `json:"warmup" bson:"warmup"`
	Cooldown        string                 `json:"cooldown" bson:"cooldown"`
}

type DayPlan struct {
	Day       string   `json:"day" bson:"day"`
	Focus     Focus    `json:"focus" bson:"focus"`
	Exercises []string `json:"exercises" bson:"exercises"`
}

// WeeklySchedule always holds seven days, Mon..Sun
type WeeklySchedule []DayPlan

// Foci returns the focus of each day in order
func (w WeeklySchedule) Foci() []Focus {
	out := make([]Focus, len(w))
	for i, d := range w {
		out[i] = d.Focus
	}
	return out
}

// TrainingDays counts the non-rest days
func (w WeeklySchedule) TrainingDays() int {
	n := 0
	for _, d := range w {
		if d.Focus != FocusRest {
			n++
		}
	}
	return n
}

// WorkoutPlan is the wire and storage shape of a plan: session fields plus an
// optional weekly schedule.
type WorkoutPlan struct {
	SessionPlan    `bson:",inline"`
	WeeklySchedule WeeklySchedule `json:"weekly_schedule,omitempty" bson:"weekly_schedule,omitempty"`
}

type PlanKind string

const (
	PlanKindSingleSession PlanKind = "single_session"
	PlanKindWeekly        PlanKind = "weekly"
)

// Plan is either a single session or a weekly program. Weekly plans still
// carry session fields (title, duration, a default exercise list).
type Plan struct {
	Kind    PlanKind
	Session SessionPlan
	Weekly  WeeklySchedule
}

// IsWeekly reports whether the plan carries a weekly schedule
func (p Plan) IsWeekly() bool {
	return p.Kind == PlanKindWeekly
}

// WorkoutPlan flattens the plan into its wire shape
func (p Plan) WorkoutPlan() WorkoutPlan {
	wp := WorkoutPlan{SessionPlan: p.Session}
	if p.IsWeekly() {
		wp.WeeklySchedule = p.Weekly
	}
	return wp
}

// PlanFromWorkout infers the plan kind from the presence of a weekly schedule
func PlanFromWorkout(wp WorkoutPlan) Plan {
	if len(wp.WeeklySchedule) > 0 {
		return Plan{Kind: PlanKindWeekly, Session: wp.SessionPlan, Weekly: wp.WeeklySchedule}
	}
	return Plan{Kind: PlanKindSingleSession, Session: wp.SessionPlan}
}

type planJSON struct {
	Kind PlanKind `json:"kind"`
	WorkoutPlan
}

func (p Plan) MarshalJSON() ([]byte, error) {
	kind := p.Kind
	if kind == "" {
		kind = PlanKindSingleSession
	}
	return json.Marshal(planJSON{Kind: kind, WorkoutPlan: p.WorkoutPlan()})
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var raw planJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PlanFromWorkout(raw.WorkoutPlan)
	return nil
}

// PlanRequest carries everything needed to generate a plan
type PlanRequest struct {
	Profile         *UserProfile  `json:"-"`
	Goal            FitnessGoal   `json:"goal"`
	Split           SplitStrategy `json:"split"`
	Focus           string        `json:"focus"`
	DurationMinutes int           `json:"duration_minutes"`
	Equipment       string        `json:"equipment"`
	Frequency       string        `json:"frequency"` // free text, e.g. "4 days"
	Level           string        `json:"level"`     // overrides the profile level when set
	Language        Language      `json:"language"`
}

// IsWeekly reports whether the request asks for a full weekly program
func (r PlanRequest) IsWeekly() bool {
	return r.Focus == FocusLabelFullWeeklyPlan
}

// EffectiveLevel is the override level or the profile's level
func (r PlanRequest) EffectiveLevel() string {
	if r.Level != "" {
		return r.Level
	}
	if r.Profile != nil {
		return string(r.Profile.Level)
	}
	return ""
}
