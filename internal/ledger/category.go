package ledger

import (
	"strings"

	"nestegg/internal/models"
)

// SameCategory reports whether two categories are duplicates. The name is
// compared case-sensitively and the hex color case-insensitively, so
// "Savings" (#00F) and "savings" (#F00) are four distinct categories but
// "Savings" (#00f) and "Savings" (#00F) are one.
func SameCategory(a, b models.Category) bool {
	return a.Name == b.Name && strings.EqualFold(a.Color, b.Color)
}

// MergeCategories merges category lists in order, dropping duplicates as
// defined by SameCategory. The first occurrence wins, so built-ins passed
// first keep their identity over later user copies.
func MergeCategories(lists ...[]models.Category) []models.Category {
	var merged []models.Category
	for _, list := range lists {
		for _, c := range list {
			if !containsCategory(merged, c) {
				merged = append(merged, c)
			}
		}
	}
	if merged == nil {
		merged = []models.Category{}
	}
	return merged
}

func containsCategory(list []models.Category, c models.Category) bool {
	for _, existing := range list {
		if SameCategory(existing, c) {
			return true
		}
	}
	return false
}

// BuiltinCategories returns the fixed category set every user starts from.
// Built-ins are templates: picking one while creating a goal stores a user
// copy, so the IDs here never appear as foreign keys.
func BuiltinCategories() []models.Category {
	return []models.Category{
		{Base: models.Base{ID: "builtin-savings"}, Name: "Savings", Color: "#2ECC71"},
		{Base: models.Base{ID: "builtin-travel"}, Name: "Travel", Color: "#3498DB"},
		{Base: models.Base{ID: "builtin-emergency"}, Name: "Emergency", Color: "#E74C3C"},
		{Base: models.Base{ID: "builtin-education"}, Name: "Education", Color: "#9B59B6"},
		{Base: models.Base{ID: "builtin-home"}, Name: "Home", Color: "#E67E22"},
		{Base: models.Base{ID: "builtin-retirement"}, Name: "Retirement", Color: "#F1C40F"},
	}
}
