package services

import (
	"testing"
	"time"

	"budgeteer/internal/models"
	"budgeteer/internal/notify"
	"budgeteer/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		user, err := svc.Register("Alice", "alice@example.com", "password123", "password123", "")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.IsActive {
			t.Error("expected new user to be inactive")
		}
		if user.Role != models.RoleUser {
			t.Errorf("expected default role user, got %s", user.Role)
		}
		if user.Password == "password123" {
			t.Error("expected password to be hashed")
		}

		var token models.ActivationToken
		if err := db.Where("user_id = ?", user.ID).First(&token).Error; err != nil {
			t.Fatalf("expected activation token to be stored: %v", err)
		}
		if token.Token == "" {
			t.Error("expected non-empty activation token")
		}
	})

	t.Run("password_mismatch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		_, err := svc.Register("Alice", "alice@example.com", "password123", "different", "")
		testutil.AssertAppError(t, err, "PASSWORD_MISMATCH")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		_, err := svc.Register("Alice", "alice@example.com", "password123", "password123", "")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("Alice", "other@example.com", "password123", "password123", "")
		testutil.AssertAppError(t, err, "DUPLICATE_NAME")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		_, err := svc.Register("Alice", "alice@example.com", "password123", "password123", "")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("Bob", "Alice@Example.com", "password123", "password123", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestActivate(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		registered, err := svc.Register("Alice", "alice@example.com", "password123", "password123", "")
		testutil.AssertNoError(t, err)

		var token models.ActivationToken
		if err := db.Where("user_id = ?", registered.ID).First(&token).Error; err != nil {
			t.Fatalf("expected activation token: %v", err)
		}

		user, err := svc.Activate(token.Token)
		testutil.AssertNoError(t, err)
		if !user.IsActive {
			t.Error("expected user to be active after activation")
		}

		// The token is consumed on use.
		var count int64
		db.Model(&models.ActivationToken{}).Where("user_id = ?", registered.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected activation token to be deleted, found %d", count)
		}
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		_, err := svc.Activate("no-such-token")
		testutil.AssertAppError(t, err, "TOKEN_NOT_FOUND")
	})

	t.Run("expired_token_is_consumed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		registered, err := svc.Register("Alice", "alice@example.com", "password123", "password123", "")
		testutil.AssertNoError(t, err)

		var token models.ActivationToken
		if err := db.Where("user_id = ?", registered.ID).First(&token).Error; err != nil {
			t.Fatalf("expected activation token: %v", err)
		}
		db.Model(&token).Update("expires_at", time.Now().Add(-time.Minute))

		_, err = svc.Activate(token.Token)
		testutil.AssertAppError(t, err, "TOKEN_EXPIRED")

		// Even an expired token is single-use.
		_, err = svc.Activate(token.Token)
		testutil.AssertAppError(t, err, "TOKEN_NOT_FOUND")

		user, err := svc.GetUserByID(registered.ID)
		testutil.AssertNoError(t, err)
		if user.IsActive {
			t.Error("expected user to stay inactive after expired activation")
		}
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})
		user := testutil.CreateTestUser(t, db)

		got, err := svc.AttemptLogin(user.Name, "password123")
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user ID %d, got %d", user.ID, got.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AttemptLogin(user.Name, "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		_, err := svc.AttemptLogin("Nobody", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		registered, err := svc.Register("Alice", "alice@example.com", "password123", "password123", "")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin(registered.Name, "password123")
		testutil.AssertAppError(t, err, "USER_NOT_ACTIVE")
	})
}

func TestTotalIncome(t *testing.T) {
	t.Run("sums_income_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})
		user := testutil.CreateTestUser(t, db)
		salary := testutil.CreateTestCategory(t, db, models.PolarityIncome, 0)
		rent := testutil.CreateTestCategory(t, db, models.PolarityExpense, 30)

		testutil.CreateTestTransaction(t, db, user.ID, salary, 500000)
		testutil.CreateTestTransaction(t, db, user.ID, salary, 300000)
		testutil.CreateTestTransaction(t, db, user.ID, rent, 120000)

		total, err := svc.TotalIncome(user.ID)
		testutil.AssertNoError(t, err)
		if total != 800000 {
			t.Errorf("expected total income 800000, got %d", total)
		}
	})

	t.Run("no_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})
		user := testutil.CreateTestUser(t, db)

		total, err := svc.TotalIncome(user.ID)
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected total income 0, got %d", total)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, notify.Noop{})

		_, err := svc.TotalIncome(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
