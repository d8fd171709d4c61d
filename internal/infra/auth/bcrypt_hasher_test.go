package auth

import (
	"strings"
	"testing"

	"urjabandhu/config"
	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Volt@ge2024")
	require.NoError(t, err)

	assert.NotEqual(t, "Volt@ge2024", hash)
	assert.True(t, hasher.Check("Volt@ge2024", hash))
	assert.False(t, hasher.Check("volt@ge2024", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Volt@ge2024", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	tests := []struct {
		password string
		wantErr  string
	}{
		{password: "Volt@ge2024"},
		{password: "Kilowatt#Hour9"},
		{password: "Bijlī-Ghar7"},
		{password: "", wantErr: "at least 8 characters"},
		{password: "Ab1!", wantErr: "at least 8 characters"},
		{password: "Aa1!" + strings.Repeat("x", 69), wantErr: "at most 72 bytes"},
		{password: "METER-READ-9", wantErr: "lowercase letter"},
		{password: "meter-read-9", wantErr: "uppercase letter"},
		{password: "Meter-Read-X", wantErr: "number"},
		{password: "MeterRead99", wantErr: "special character"},
		{password: "MyPassword1!", wantErr: "forbidden words"},
		{password: "Qwerty#2024", wantErr: "forbidden words"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBcryptHasher_HashRejectsWeakPassword(t *testing.T) {
	_, err := NewBcryptHasherWithCost(bcrypt.MinCost).Hash("weak")

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}, want: 6},
		{name: "unset", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "out of range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
