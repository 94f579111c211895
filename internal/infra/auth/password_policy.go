// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"connect/config"
	"connect/internal/domain/service"
)

// passwordPolicy checks candidate passwords against configured complexity rules.
// It is a pure function holder: no I/O, no state beyond the configuration.
type passwordPolicy struct {
	minLength        int
	requireUppercase bool
	requireDigit     bool
	requireSpecial   bool
}

// NewPasswordPolicy builds a policy validator from configuration.
func NewPasswordPolicy(cfg *config.PasswordPolicyConfig) service.PasswordPolicy {
	return &passwordPolicy{
		minLength:        cfg.MinLength,
		requireUppercase: cfg.RequireUppercase,
		requireDigit:     cfg.RequireDigit,
		requireSpecial:   cfg.RequireSpecial,
	}
}

// Validate evaluates every rule and returns all violations at once, so the
// caller can present a complete error list rather than one rule per attempt.
func (p *passwordPolicy) Validate(password string) []string {
	var violations []string

	if len(password) < p.minLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", p.minLength))
	}
	if p.requireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if p.requireDigit && !strings.ContainsFunc(password, unicode.IsDigit) {
		violations = append(violations, "password must contain at least one digit")
	}
	if p.requireSpecial && !strings.ContainsFunc(password, isSpecialChar) {
		violations = append(violations, "password must contain at least one special character")
	}

	return violations
}

func isSpecialChar(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
