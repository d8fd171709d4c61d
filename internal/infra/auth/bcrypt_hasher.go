package auth

import (
	"strings"
	"unicode"

	"urjabandhu/config"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes; longer passwords are refused.
	maxPasswordBytes = 72
)

//nolint:gochecknoglobals
var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "urjabandhu"}

type passwordRule struct {
	ok      func(string) bool
	message string
}

//nolint:gochecknoglobals
var passwordRules = []passwordRule{
	{func(s string) bool { return len([]rune(s)) >= minPasswordLength }, "password must be at least 8 characters long"},
	{func(s string) bool { return len(s) <= maxPasswordBytes }, "password must be at most 72 bytes"},
	{containsRune(unicode.IsLower), "password must contain at least one lowercase letter"},
	{containsRune(unicode.IsUpper), "password must contain at least one uppercase letter"},
	{containsRune(unicode.IsDigit), "password must contain at least one number"},
	{containsRune(func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }), "password must contain at least one special character"},
	{func(s string) bool { return !containsAny(strings.ToLower(s), forbiddenPasswordWords) }, "password contains forbidden words"},
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses auth.bcryptCost when set.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost falls back to bcrypt.DefaultCost for out-of-range costs.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash refuses weak passwords before hashing.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(hash), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength reports the first rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			return errors.Wrap(domainerrors.ErrPasswordStrength, rule.message)
		}
	}

	return nil
}

func containsRune(pred func(rune) bool) func(string) bool {
	return func(s string) bool {
		return strings.IndexFunc(s, pred) >= 0
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}

	return false
}
