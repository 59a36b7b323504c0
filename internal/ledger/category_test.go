package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nestegg/internal/models"
)

func cat(name, color string) models.Category {
	return models.Category{Name: name, Color: color}
}

func TestSameCategory(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Category
		same bool
	}{
		{"identical", cat("Savings", "#2ECC71"), cat("Savings", "#2ECC71"), true},
		{"color case differs", cat("Savings", "#2ecc71"), cat("Savings", "#2ECC71"), true},
		{"name case differs", cat("savings", "#2ECC71"), cat("Savings", "#2ECC71"), false},
		{"same name different color", cat("Savings", "#FF0000"), cat("Savings", "#2ECC71"), false},
		{"different name same color", cat("Travel", "#2ECC71"), cat("Savings", "#2ECC71"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, SameCategory(tt.a, tt.b))
		})
	}
}

func TestMergeCategories(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		first := []models.Category{{Base: models.Base{ID: "builtin-savings"}, Name: "Savings", Color: "#2ECC71"}}
		second := []models.Category{{Base: models.Base{ID: "user-copy"}, Name: "Savings", Color: "#2ecc71"}}

		merged := MergeCategories(first, second)
		assert.Len(t, merged, 1)
		assert.Equal(t, "builtin-savings", merged[0].ID)
	})

	t.Run("distinct categories are all kept", func(t *testing.T) {
		merged := MergeCategories(
			[]models.Category{cat("Savings", "#2ECC71")},
			[]models.Category{cat("savings", "#2ECC71"), cat("Savings", "#FF0000")},
		)
		assert.Len(t, merged, 3)
	})

	t.Run("duplicates within one list collapse", func(t *testing.T) {
		merged := MergeCategories([]models.Category{
			cat("Travel", "#3498DB"),
			cat("Travel", "#3498db"),
		})
		assert.Len(t, merged, 1)
	})

	t.Run("no input yields empty non-nil slice", func(t *testing.T) {
		merged := MergeCategories()
		assert.NotNil(t, merged)
		assert.Empty(t, merged)
	})
}

func TestBuiltinCategories(t *testing.T) {
	builtins := BuiltinCategories()
	assert.Len(t, builtins, 6)

	seen := map[string]bool{}
	for _, c := range builtins {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Color)
		assert.False(t, seen[c.ID], "duplicate builtin ID %s", c.ID)
		seen[c.ID] = true
	}

	// Two calls must not share backing storage.
	builtins[0].Name = "mutated"
	assert.Equal(t, "Savings", BuiltinCategories()[0].Name)
}
