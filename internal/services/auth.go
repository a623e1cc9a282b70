package services

import (
	"crypto/subtle"

	"personal-diary/internal/apperr"
	"personal-diary/internal/logger"
)

// AuthGate performs the single password check before the diary opens.
// The password is compared as plain text; nothing is hashed or stored.
type AuthGate struct {
	password string
	logger   logger.Logger
}

// NewAuthGate creates a gate for the configured password
func NewAuthGate(password string, log logger.Logger) *AuthGate {
	if log == nil {
		log = logger.NoOp{}
	}
	return &AuthGate{password: password, logger: log}
}

// Verify compares input byte for byte, case-sensitively. Empty input is a
// wrong password like any other.
func (g *AuthGate) Verify(input string) error {
	if input == "" || subtle.ConstantTimeCompare([]byte(input), []byte(g.password)) != 1 {
		g.logger.Warning("AuthGate", "access denied", nil)
		return apperr.ErrWrongPassword
	}
	g.logger.Info("AuthGate", "access granted", nil)
	return nil
}
