package domain

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Activity multipliers offered to users, sedentary to extra active
var ActivityMultipliers = []float64{1.2, 1.375, 1.55, 1.725, 1.9}

// Biometric defaults used when input is missing or unusable
const (
	DefaultAge                = 25
	DefaultWeightKg           = 70.0
	DefaultHeightCm           = 175.0
	DefaultActivityMultiplier = 1.55
)

type BiometricInput struct {
	Age                int     `json:"age"`
	WeightKg           float64 `json:"weight_kg"`
	HeightCm           float64 `json:"height_cm"`
	Sex                Sex     `json:"sex"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
}

// EnergyTargets are daily calorie figures in kcal. Deficit and surplus are
// always exactly 500 from TDEE and may be negative.
type EnergyTargets struct {
	BMR           int `json:"bmr"`
	TDEE          int `json:"tdee"`
	DeficitTarget int `json:"deficit_target"`
	SurplusTarget int `json:"surplus_target"`
}
