package auth

import (
	"time"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Profile     domain.Profile
}
