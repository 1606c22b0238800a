package planner

import (
	"fmt"

	"github.com/mansoorceksport/titan/internal/domain"
)

const daysPerWeek = len(domain.Weekdays)

var pplHighFrequency = []domain.Focus{
	domain.FocusPush, domain.FocusPull, domain.FocusLegs, domain.FocusRest,
	domain.FocusPush, domain.FocusPull, domain.FocusRest,
}

// BuildWeeklySchedule expands a split and a weekly training frequency into a
// Mon..Sun schedule. Bro and custom splits are scheduled as full body.
func BuildWeeklySchedule(strategy domain.SplitStrategy, frequency int) (domain.WeeklySchedule, error) {
	if frequency < 1 || frequency > daysPerWeek {
		return nil, fmt.Errorf("%w: frequency must be between 1 and %d, got %d", domain.ErrInvalidArgument, daysPerWeek, frequency)
	}

	var seq []domain.Focus
	switch strategy {
	case domain.SplitPushPullLegs:
		seq = pushPullLegsSequence(frequency)
	case domain.SplitUpperLower:
		seq = restEveryThird([]domain.Focus{domain.FocusUpper, domain.FocusLower}, frequency)
	default:
		seq = restEveryThird([]domain.Focus{domain.FocusFullBody}, frequency)
	}

	schedule := make(domain.WeeklySchedule, daysPerWeek)
	for i, day := range domain.Weekdays {
		focus := domain.FocusRest
		if i < len(seq) {
			focus = seq[i]
		}
		schedule[i] = domain.DayPlan{
			Day:       day,
			Focus:     focus,
			Exercises: ExerciseListFor(focus),
		}
	}
	return schedule, nil
}

func pushPullLegsSequence(frequency int) []domain.Focus {
	if frequency >= 5 {
		return append([]domain.Focus(nil), pplHighFrequency...)
	}
	cycle := []domain.Focus{domain.FocusPush, domain.FocusPull, domain.FocusLegs}
	seq := make([]domain.Focus, 0, daysPerWeek+1)
	for len(seq) < daysPerWeek {
		for _, f := range cycle {
			if len(seq) >= daysPerWeek {
				break
			}
			seq = append(seq, f)
		}
		seq = append(seq, domain.FocusRest)
	}
	return seq[:daysPerWeek]
}

// restEveryThird places frequency training days from cycle, appending a rest
// day whenever the sequence length reaches a multiple of three. Anything past
// Sunday is dropped by the caller.
func restEveryThird(cycle []domain.Focus, frequency int) []domain.Focus {
	var seq []domain.Focus
	for trained := 0; trained < frequency; trained++ {
		seq = append(seq, cycle[trained%len(cycle)])
		if len(seq)%3 == 0 {
			seq = append(seq, domain.FocusRest)
		}
	}
	return seq
}
