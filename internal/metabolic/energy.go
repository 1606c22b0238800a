// Package metabolic holds the pure nutrition and training arithmetic: energy
// targets, daily macro totals, streaks and the offline food estimator.
package metabolic

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mansoorceksport/titan/internal/domain"
)

const targetOffsetKcal = 500

// ComputeEnergyTargets applies Mifflin-St Jeor. TDEE is derived from the
// unrounded BMR.
func ComputeEnergyTargets(in domain.BiometricInput) domain.EnergyTargets {
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if in.Sex == domain.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := int(math.Round(bmr * in.ActivityMultiplier))
	return domain.EnergyTargets{
		BMR:           int(math.Round(bmr)),
		TDEE:          tdee,
		DeficitTarget: tdee - targetOffsetKcal,
		SurplusTarget: tdee + targetOffsetKcal,
	}
}

var leadingNumber = regexp.MustCompile(`^\s*[0-9]*\.?[0-9]+`)

// parsePositive reads a leading decimal ("82.5 kg" is 82.5) and returns def
// for anything missing, unparseable or not positive.
func parsePositive(s string, def float64) float64 {
	m := leadingNumber.FindString(s)
	if m == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// ParseSex treats anything other than an explicit male answer as female,
// matching the formula's non-male constant.
func ParseSex(s string) domain.Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man":
		return domain.SexMale
	}
	return domain.SexFemale
}

// ParseActivity accepts one of the offered multipliers, otherwise moderate
func ParseActivity(s string) float64 {
	v := parsePositive(s, domain.DefaultActivityMultiplier)
	for _, m := range domain.ActivityMultipliers {
		if math.Abs(v-m) < 1e-9 {
			return m
		}
	}
	return domain.DefaultActivityMultiplier
}

// ParseBiometricInput builds an input from form values. It never fails and
// never yields zero or negative measurements.
func ParseBiometricInput(age, weight, height, sex, activity string) domain.BiometricInput {
	a := int(math.Round(parsePositive(age, domain.DefaultAge)))
	if a <= 0 {
		a = domain.DefaultAge
	}
	return domain.BiometricInput{
		Age:                a,
		WeightKg:           parsePositive(weight, domain.DefaultWeightKg),
		HeightCm:           parsePositive(height, domain.DefaultHeightCm),
		Sex:                ParseSex(sex),
		ActivityMultiplier: ParseActivity(activity),
	}
}
