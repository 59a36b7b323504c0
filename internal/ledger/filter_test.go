package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nestegg/internal/models"
)

func testGoals() []models.Goal {
	catA := "cat-a"
	catB := "cat-b"
	return []models.Goal{
		{Base: models.Base{ID: "g1"}, Name: "Vacation Fund", CategoryID: &catA},
		{Base: models.Base{ID: "g2"}, Name: "New Laptop", CategoryID: &catB},
		{Base: models.Base{ID: "g3"}, Name: "Rainy Day"},
	}
}

func TestApply(t *testing.T) {
	goals := testGoals()
	entries := []models.GoalTransaction{
		{Base: models.Base{ID: "e1"}, GoalID: "g1", BalanceID: "b1", Type: models.TransactionTypeDeposit, Amount: dec("100"), Notes: "Added $100"},
		{Base: models.Base{ID: "e2"}, GoalID: "g1", BalanceID: "b2", Type: models.TransactionTypeWithdrawal, Amount: dec("20"), Notes: "moved back"},
		{Base: models.Base{ID: "e3"}, GoalID: "g2", BalanceID: "b1", Type: models.TransactionTypeDeposit, Amount: dec("50"), Notes: "paycheck"},
		{Base: models.Base{ID: "e4"}, GoalID: "g3", BalanceID: "b1", Type: models.TransactionTypeDeposit, Amount: dec("10"), Notes: "spare change"},
		{Base: models.Base{ID: "e5"}, GoalID: "missing", BalanceID: "b1", Type: models.TransactionTypeDeposit, Amount: dec("5"), Notes: "orphan"},
	}

	ids := func(got []models.GoalTransaction) []string {
		out := make([]string, len(got))
		for i, e := range got {
			out[i] = e.ID
		}
		return out
	}

	t.Run("empty filter matches everything", func(t *testing.T) {
		got := Apply(entries, goals, Filter{})
		assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5"}, ids(got))
	})

	t.Run("all sentinel matches everything", func(t *testing.T) {
		got := Apply(entries, goals, Filter{GoalID: All, CategoryID: All, BalanceID: All})
		assert.Len(t, got, len(entries))
	})

	t.Run("goal filter", func(t *testing.T) {
		got := Apply(entries, goals, Filter{GoalID: "g1"})
		assert.Equal(t, []string{"e1", "e2"}, ids(got))
	})

	t.Run("category filter resolves through the goal", func(t *testing.T) {
		got := Apply(entries, goals, Filter{CategoryID: "cat-a"})
		assert.Equal(t, []string{"e1", "e2"}, ids(got))
	})

	t.Run("category filter skips uncategorized and unresolvable goals", func(t *testing.T) {
		got := Apply(entries, goals, Filter{CategoryID: "cat-b"})
		assert.Equal(t, []string{"e3"}, ids(got))
	})

	t.Run("balance filter", func(t *testing.T) {
		got := Apply(entries, goals, Filter{BalanceID: "b2"})
		assert.Equal(t, []string{"e2"}, ids(got))
	})

	t.Run("type filter", func(t *testing.T) {
		got := Apply(entries, goals, Filter{Type: "withdrawal"})
		assert.Equal(t, []string{"e2"}, ids(got))
	})

	t.Run("type all sentinel matches everything", func(t *testing.T) {
		got := Apply(entries, goals, Filter{Type: All})
		assert.Len(t, got, len(entries))
	})

	t.Run("dimensions combine with AND", func(t *testing.T) {
		got := Apply(entries, goals, Filter{GoalID: "g1", BalanceID: "b1"})
		assert.Equal(t, []string{"e1"}, ids(got))
	})

	t.Run("type combines with goal", func(t *testing.T) {
		got := Apply(entries, goals, Filter{GoalID: "g1", Type: "deposit"})
		assert.Equal(t, []string{"e1"}, ids(got))
	})

	t.Run("search matches notes case-insensitively", func(t *testing.T) {
		got := Apply(entries, goals, Filter{Search: "PAYCHECK"})
		assert.Equal(t, []string{"e3"}, ids(got))
	})

	t.Run("search matches the goal name", func(t *testing.T) {
		got := Apply(entries, goals, Filter{Search: "vacation"})
		assert.Equal(t, []string{"e1", "e2"}, ids(got))
	})

	t.Run("search cannot match across the notes and name boundary", func(t *testing.T) {
		got := Apply(entries, goals, Filter{Search: "$100Vacation"})
		assert.Empty(t, got)
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		got := Apply(entries, goals, Filter{GoalID: "nope"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDisplayLabel(t *testing.T) {
	idx := GoalIndex(testGoals())

	t.Run("resolved goal name", func(t *testing.T) {
		e := models.GoalTransaction{GoalID: "g2"}
		assert.Equal(t, "New Laptop", DisplayLabel(e, idx))
	})

	t.Run("unresolvable goal falls back to the raw ID", func(t *testing.T) {
		e := models.GoalTransaction{GoalID: "missing"}
		assert.Equal(t, "missing", DisplayLabel(e, idx))
	})
}
