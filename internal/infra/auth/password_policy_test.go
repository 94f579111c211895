package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"connect/config"
)

func newTestPolicy() *config.PasswordPolicyConfig {
	return &config.PasswordPolicyConfig{
		MinLength:        12,
		RequireUppercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

func TestPasswordPolicy_ValidPassword(t *testing.T) {
	policy := NewPasswordPolicy(newTestPolicy())

	valid := []string{
		"Str0ng!Pass1234",
		"MySecure@Pass1word",
		"Complex#Secret99",
		"Valid$Phrase2024",
	}

	for _, password := range valid {
		assert.Empty(t, policy.Validate(password), "expected no violations for %q", password)
	}
}

func TestPasswordPolicy_SingleViolations(t *testing.T) {
	policy := NewPasswordPolicy(newTestPolicy())

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "too short", password: "Sh0rt!pw", want: "password must be at least 12 characters long"},
		{name: "no uppercase", password: "all0wercase!pass", want: "password must contain at least one uppercase letter"},
		{name: "no digit", password: "NoDigitsHere!Pass", want: "password must contain at least one digit"},
		{name: "no special", password: "NoSpecials123Pass", want: "password must contain at least one special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := policy.Validate(tt.password)
			assert.Equal(t, []string{tt.want}, violations)
		})
	}
}

func TestPasswordPolicy_ReturnsAllViolationsAtOnce(t *testing.T) {
	policy := NewPasswordPolicy(newTestPolicy())

	// Short, lowercase-only, no digit, no special: all four rules broken.
	violations := policy.Validate("weakpass")
	assert.Len(t, violations, 4)
}

func TestPasswordPolicy_TogglesDisableRules(t *testing.T) {
	policy := NewPasswordPolicy(&config.PasswordPolicyConfig{
		MinLength:        8,
		RequireUppercase: false,
		RequireDigit:     false,
		RequireSpecial:   false,
	})

	assert.Empty(t, policy.Validate("lowercase"))
	assert.Equal(t,
		[]string{"password must be at least 8 characters long"},
		policy.Validate("short"),
	)
}
