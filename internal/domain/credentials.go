package domain

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// PasswordCost is the bcrypt work factor used by SetPassword.
	PasswordCost = 14

	// PasswordMinLength and PasswordMaxLength bound a password in characters.
	PasswordMinLength = 8
	PasswordMaxLength = 100

	// bcryptSaltLength is the length of "$2a$NN$" plus the 22 character
	// encoded salt that prefixes every bcrypt hash.
	bcryptSaltLength = 29

	// bcryptMaxInput is the largest input bcrypt accepts.
	bcryptMaxInput = 72
)

// ErrMissingCredentials is returned when a user has no password hash or salt.
var ErrMissingCredentials = errors.New("user has no credentials")

// PasswordRule names one requirement of the password policy.
type PasswordRule string

// Rules of the password policy.
const (
	RuleMinLength PasswordRule = "min_length"
	RuleMaxLength PasswordRule = "max_length"
	RuleUppercase PasswordRule = "uppercase"
	RuleLowercase PasswordRule = "lowercase"
	RuleDigit     PasswordRule = "digit"
	RuleNoSpaces  PasswordRule = "no_spaces"
)

// PasswordPolicyError lists every rule a rejected password failed.
// It wraps ErrInvalidPassword.
type PasswordPolicyError struct {
	Failed []PasswordRule
}

func (e *PasswordPolicyError) Error() string {
	rules := make([]string, len(e.Failed))
	for i, r := range e.Failed {
		rules[i] = string(r)
	}
	return fmt.Sprintf("%s: failed %s", ErrInvalidPassword, strings.Join(rules, ", "))
}

func (e *PasswordPolicyError) Unwrap() error {
	return ErrInvalidPassword
}

// CheckPasswordPolicy validates raw against the password policy: 8 to 100
// characters, at least one uppercase letter, one lowercase letter and one
// digit, and no whitespace. It returns nil or a *PasswordPolicyError.
func CheckPasswordPolicy(raw string) error {
	var failed []PasswordRule

	n := utf8.RuneCountInString(raw)
	if n < PasswordMinLength {
		failed = append(failed, RuleMinLength)
	}
	if n > PasswordMaxLength {
		failed = append(failed, RuleMaxLength)
	}

	var upper, lower, digit, space bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsSpace(r):
			space = true
		}
	}
	if !upper {
		failed = append(failed, RuleUppercase)
	}
	if !lower {
		failed = append(failed, RuleLowercase)
	}
	if !digit {
		failed = append(failed, RuleDigit)
	}
	if space {
		failed = append(failed, RuleNoSpaces)
	}

	if len(failed) > 0 {
		return &PasswordPolicyError{Failed: failed}
	}
	return nil
}

// SetPassword validates raw and, if it satisfies the policy, replaces the
// user's hash and salt using PasswordCost. On failure the existing
// credentials are left untouched.
func (u *User) SetPassword(raw string) error {
	return u.SetPasswordWithCost(raw, PasswordCost)
}

// SetPasswordWithCost is SetPassword with an explicit bcrypt work factor.
// Every call draws a fresh random salt.
func (u *User) SetPasswordWithCost(raw string, cost int) error {
	if err := CheckPasswordPolicy(raw); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(raw), cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	u.Salt = string(hash[:bcryptSaltLength])
	return nil
}

// CheckPassword reports whether raw matches the stored credentials. Missing
// or malformed credentials never match.
func (u *User) CheckPassword(raw string) bool {
	if len(u.Salt) != bcryptSaltLength || !strings.HasPrefix(u.PasswordHash, u.Salt) {
		return false
	}
	if _, err := bcrypt.Cost([]byte(u.PasswordHash)); err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), bcryptInput(raw)) == nil
}

// bcryptInput returns the bytes fed to bcrypt. Passwords over bcrypt's 72 byte
// limit are reduced to a base64 SHA-256 digest so the full password counts.
func bcryptInput(raw string) []byte {
	if len(raw) <= bcryptMaxInput {
		return []byte(raw)
	}
	sum := sha256.Sum256([]byte(raw))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
