package main

// Offline CLI printing a deterministic weekly schedule, session or energy targets as JSON.

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/metabolic"
	"github.com/mansoorceksport/titan/internal/planner"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	mode := fs.String("mode", "weekly", "what to print: weekly, session or targets")
	split := fs.String("split", "Full Body", "split strategy label, e.g. \"PPL\" or \"Upper / Lower\"")
	frequency := fs.String("frequency", "3", "training days per week, free text")
	focus := fs.String("focus", "Full Body", "session focus")
	duration := fs.Int("duration", planner.DefaultDurationMinutes, "session duration in minutes")
	difficulty := fs.String("difficulty", "Intermediate", "session difficulty")
	age := fs.String("age", "", "age in years")
	weight := fs.String("weight", "", "weight in kg")
	height := fs.String("height", "", "height in cm")
	sex := fs.String("sex", "", "male or female")
	activity := fs.String("activity", "", "activity multiplier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var result interface{}
	switch *mode {
	case "weekly":
		schedule, err := planner.BuildWeeklySchedule(planner.ParseSplitStrategy(*split), planner.ParseFrequency(*frequency))
		if err != nil {
			return err
		}
		result = schedule
	case "session":
		result = domain.Plan{
			Kind:    domain.PlanKindSingleSession,
			Session: planner.BuildSingleSessionPlan(*focus, *duration, *difficulty),
		}
	case "targets":
		result = metabolic.ComputeEnergyTargets(metabolic.ParseBiometricInput(*age, *weight, *height, *sex, *activity))
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
