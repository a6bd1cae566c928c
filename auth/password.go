package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/internmatch/backend/config"
)

var (
	// ErrInvalidCredentials is returned for a wrong username or password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrLoginDisabled is returned when no admin password hash is configured
	ErrLoginDisabled = errors.New("admin login is disabled")
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password with a bcrypt hash
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AdminAuthenticator verifies the single configured admin account
type AdminAuthenticator struct {
	username     string
	passwordHash string
}

// NewAdminAuthenticator reads the admin credentials from config
func NewAdminAuthenticator(cfg *config.Config) *AdminAuthenticator {
	return &AdminAuthenticator{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
	}
}

// Enabled reports whether an admin password hash is configured
func (a *AdminAuthenticator) Enabled() bool {
	return a.passwordHash != ""
}

// Authenticate checks the credentials and returns the admin username
func (a *AdminAuthenticator) Authenticate(username, password string) (string, error) {
	if !a.Enabled() {
		return "", ErrLoginDisabled
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := CheckPassword(password, a.passwordHash)
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return a.username, nil
}
