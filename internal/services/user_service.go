package services

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"budgeteer/internal/config"
	apperrors "budgeteer/internal/errors"
	"budgeteer/internal/logger"
	"budgeteer/internal/models"
	"budgeteer/internal/notify"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// userService handles user registration, activation and authentication.
type userService struct {
	db     *gorm.DB
	sender notify.Sender
	now    func() time.Time
}

// NewUserService creates a new UserServicer. The sender delivers activation
// emails; pass notify.Noop{} to disable notifications.
func NewUserService(db *gorm.DB, sender notify.Sender) UserServicer {
	return &userService{db: db, sender: sender, now: time.Now}
}

// Register creates an inactive user, stores an activation token for them and
// hands the activation email off to the notification queue. A failed publish
// is logged but does not fail registration and is never retried.
func (s *userService) Register(name, email, password, passwordConfirmation string, role models.Role) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email and password are required")
	}
	if password != passwordConfirmation {
		return nil, apperrors.ErrPasswordMismatch
	}
	if role == "" {
		role = models.RoleUser
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateName
	}

	email = strings.ToLower(email)
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: false,
	}

	cfg := config.Get()
	token, err := generateToken(cfg.ActivationTokenLength)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		activation := &models.ActivationToken{
			Token:     token,
			UserID:    user.ID,
			ExpiresAt: s.now().Add(cfg.ActivationTokenTTL),
		}
		return tx.Create(activation).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.sender.SendActivationEmail(context.Background(), user.Email, user.Name, token); err != nil {
		logger.Get().Warnw("failed to publish activation email",
			"user_id", user.ID,
			"error", err.Error(),
		)
	}

	return user, nil
}

// Activate consumes an activation token. The token row is hard-deleted on
// first use whether or not it is still valid; only an unexpired token
// activates the user.
func (s *userService) Activate(token string) (*models.User, error) {
	var activation models.ActivationToken
	if err := s.db.Where("token = ?", token).First(&activation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Unscoped().Delete(&activation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if activation.Expired(s.now()) {
		return nil, apperrors.ErrTokenExpired
	}

	var user models.User
	if err := s.db.First(&user, activation.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.IsActive = true
	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// AttemptLogin verifies the name/password pair for an active user.
func (s *userService) AttemptLogin(name, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserNotActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByName retrieves a user by their unique name.
func (s *userService) GetUserByName(name string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// TotalIncome sums all income transaction amounts for the user.
func (s *userService) TotalIncome(userID uint) (int64, error) {
	if _, err := s.GetUserByID(userID); err != nil {
		return 0, err
	}

	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND polarity = ?", userID, models.PolarityIncome).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// generateToken returns a random alphanumeric string of the given length.
func generateToken(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tokenAlphabet[n.Int64()]
	}
	return string(out), nil
}
