package repositories

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"usergroups/internal/models"
)

// stamp applies the Save contract shared by every store implementation.
func stamp(id *string, status *models.Status, createdAt, updatedAt *time.Time, now time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	if *status == "" {
		*status = models.StatusActive
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in a column
// folded with LOWER().
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(foldASCII(s)) + "%"
}

// foldASCII lower-cases A-Z only. SQLite's LOWER() folds nothing else, so every store
// uses this rule and "É" never matches "é".
func foldASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
