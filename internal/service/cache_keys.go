package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
)

const (
	foodKeyPrefix  = "food:estimate:"
	statsKeyPrefix = "stats:"
)

// FoodEstimateKey identifies a cached estimate. Queries differing only in
// case or surrounding space share a key.
func FoodEstimateKey(lang domain.Language, query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return foodKeyPrefix + string(lang) + ":" + hex.EncodeToString(sum[:])
}

// StatsKey identifies a profile's cached stats for one calendar day in the
// location of day
func StatsKey(profileID string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", statsKeyPrefix, profileID, day.Format("2006-01-02"), day.Location())
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// StatsPattern matches every cached stats entry of a profile. Glob
// characters in the id match literally.
func StatsPattern(profileID string) string {
	return statsKeyPrefix + globEscaper.Replace(profileID) + ":*"
}
