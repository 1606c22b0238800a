package planner

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mansoorceksport/titan/internal/domain"
)

// DefaultFrequency is used when a frequency string carries no number
const DefaultFrequency = 3

var digitRun = regexp.MustCompile(`[0-9]+`)

// ParseFrequency reads the first run of digits, so "4 days" and "4x/week" both give 4
func ParseFrequency(s string) int {
	m := digitRun.FindString(s)
	if m == "" {
		return DefaultFrequency
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return DefaultFrequency
	}
	return n
}

func clampFrequency(n int) int {
	if n < 1 {
		return 1
	}
	if n > 7 {
		return 7
	}
	return n
}

var splitAliases = map[string]domain.SplitStrategy{
	"pushpulllegs":          domain.SplitPushPullLegs,
	"ppl":                   domain.SplitPushPullLegs,
	"upperlower":            domain.SplitUpperLower,
	"ul":                    domain.SplitUpperLower,
	"bodypartsplitbrosplit": domain.SplitBroSplit,
	"brosplit":              domain.SplitBroSplit,
	"bro":                   domain.SplitBroSplit,
	"fullbody":              domain.SplitFullBody,
	"fb":                    domain.SplitFullBody,
	"custommixed":           domain.SplitCustom,
	"custom":                domain.SplitCustom,
}

// ParseSplitStrategy accepts display labels ("Push / Pull / Legs") and short
// codes ("ppl", "upper_lower"). Unknown input is Full Body.
func ParseSplitStrategy(label string) domain.SplitStrategy {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, label)
	if s, ok := splitAliases[key]; ok {
		return s
	}
	return domain.SplitFullBody
}
