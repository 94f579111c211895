package service

// PasswordPolicy defines the interface for checking candidate passwords
// against the configured complexity rules.
type PasswordPolicy interface {
	// Validate returns the complete list of violated rules for the candidate
	// password. An empty list means the password satisfies the policy.
	// All rules are evaluated; the check never stops at the first violation.
	Validate(password string) []string
}
