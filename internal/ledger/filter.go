package ledger

import (
	"strings"

	"nestegg/internal/models"
)

// All is the sentinel filter value that matches every entry, equivalent to
// leaving the dimension empty.
const All = "all"

// Filter holds the optional dimensions an entry list can be narrowed by.
// All specified dimensions must match (logical AND). Empty or "all" values
// match everything.
type Filter struct {
	GoalID     string
	CategoryID string
	BalanceID  string
	Type       string
	Search     string
}

// GoalIndex builds a lookup from goal ID to goal for category and name
// resolution during filtering.
func GoalIndex(goals []models.Goal) map[string]models.Goal {
	idx := make(map[string]models.Goal, len(goals))
	for _, g := range goals {
		idx[g.ID] = g
	}
	return idx
}

// Apply returns the entries matching every specified filter dimension.
// Entries whose goal cannot be resolved never match a category or search
// dimension; they are dropped rather than causing an error.
func Apply(entries []models.GoalTransaction, goals []models.Goal, f Filter) []models.GoalTransaction {
	idx := GoalIndex(goals)
	out := make([]models.GoalTransaction, 0, len(entries))
	for _, e := range entries {
		if Matches(e, idx, f) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a single entry passes every specified dimension.
func Matches(e models.GoalTransaction, goals map[string]models.Goal, f Filter) bool {
	if !wildcard(f.GoalID) && e.GoalID != f.GoalID {
		return false
	}

	if !wildcard(f.CategoryID) {
		goal, ok := goals[e.GoalID]
		if !ok || goal.CategoryID == nil || *goal.CategoryID != f.CategoryID {
			return false
		}
	}

	if !wildcard(f.BalanceID) && e.BalanceID != f.BalanceID {
		return false
	}

	if !wildcard(f.Type) && string(e.Type) != f.Type {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(e.Notes)
		if goal, ok := goals[e.GoalID]; ok {
			haystack += "\x00" + strings.ToLower(goal.Name)
		}
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	return true
}

// DisplayLabel resolves the goal name for an entry, falling back to the raw
// goal ID when the reference cannot be resolved.
func DisplayLabel(e models.GoalTransaction, goals map[string]models.Goal) string {
	if goal, ok := goals[e.GoalID]; ok {
		return goal.Name
	}
	return e.GoalID
}

func wildcard(v string) bool {
	return v == "" || v == All
}
