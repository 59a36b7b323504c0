package services

import (
	"testing"

	"nestegg/internal/ledger"
	"nestegg/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Hobbies", "#112233")
		testutil.AssertNoError(t, err)
		if category.ID == "" {
			t.Fatal("expected non-empty category ID")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "", "#112233")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_same_name_and_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Hobbies", "#AABBCC")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "Hobbies", "#AABBCC")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")

		// Color comparison is case-insensitive.
		_, err = svc.CreateCategory(user.ID, "Hobbies", "#aabbcc")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_different_color_is_distinct", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Hobbies", "#112233")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(user.ID, "Hobbies", "#445566")
		testutil.AssertNoError(t, err)
	})

	t.Run("name_comparison_is_case_sensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Hobbies", "#112233")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(user.ID, "hobbies", "#112233")
		testutil.AssertNoError(t, err)
	})

	t.Run("builtin_duplicate_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		builtin := ledger.BuiltinCategories()[0]
		_, err := svc.CreateCategory(user.ID, builtin.Name, builtin.Color)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})
}

func TestGetMergedCategories(t *testing.T) {
	t.Run("builtins_come_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		custom, err := svc.CreateCategory(user.ID, "Hobbies", "#112233")
		testutil.AssertNoError(t, err)

		merged, err := svc.GetMergedCategories(user.ID)
		testutil.AssertNoError(t, err)

		builtins := ledger.BuiltinCategories()
		if len(merged) != len(builtins)+1 {
			t.Fatalf("expected %d categories, got %d", len(builtins)+1, len(merged))
		}
		if merged[0].ID != builtins[0].ID {
			t.Errorf("expected builtin first, got %s", merged[0].ID)
		}
		if merged[len(merged)-1].ID != custom.ID {
			t.Errorf("expected custom category last, got %s", merged[len(merged)-1].ID)
		}
	})

	t.Run("no_custom_categories_still_returns_builtins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		merged, err := svc.GetMergedCategories(user.ID)
		testutil.AssertNoError(t, err)
		if len(merged) != len(ledger.BuiltinCategories()) {
			t.Errorf("expected builtin set, got %d categories", len(merged))
		}
	})

	t.Run("excludes_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user1.ID, "Private", "#112233")
		testutil.AssertNoError(t, err)

		merged, err := svc.GetMergedCategories(user2.ID)
		testutil.AssertNoError(t, err)
		for _, c := range merged {
			if c.Name == "Private" {
				t.Error("leaked another user's category")
			}
		}
	})
}
