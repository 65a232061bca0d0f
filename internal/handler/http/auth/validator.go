package auth

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// defaultWeakPasswords is used when the security config lists none.
var defaultWeakPasswords = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"newsdesk",
	"default",
	"root",
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"qwerty",
	"asdfgh",
	"zxcvb",
}

// CredentialPolicy is what ValidateAdminCredentials enforces at startup.
type CredentialPolicy struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// ValidateAdminCredentials checks the admin credentials from the environment
// before the server starts. The returned message never contains the password.
//
// Requirements:
//   - ADMIN_USER is a valid email address
//   - exactly one of ADMIN_USER_PASSWORD_HASH (bcrypt) or ADMIN_USER_PASSWORD is usable
//   - a plain password is at least MinPasswordLength characters and not weak
func ValidateAdminCredentials(policy CredentialPolicy) error {
	return validateAdmin(
		os.Getenv("ADMIN_USER"),
		os.Getenv("ADMIN_USER_PASSWORD"),
		os.Getenv("ADMIN_USER_PASSWORD_HASH"),
		policy,
	)
}

func validateAdmin(user, pass, hash string, policy CredentialPolicy) error {
	const prefix = "admin credentials validation failed"

	if strings.TrimSpace(user) == "" {
		return fmt.Errorf("%s: ADMIN_USER must not be empty", prefix)
	}
	if _, err := mail.ParseAddress(user); err != nil {
		return fmt.Errorf("%s: ADMIN_USER must be an email address", prefix)
	}

	// ハッシュが設定されている場合は平文パスワードのチェックを行わない
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return fmt.Errorf("%s: ADMIN_USER_PASSWORD_HASH is not a bcrypt hash", prefix)
		}
		return nil
	}

	if pass == "" {
		return fmt.Errorf("%s: ADMIN_USER_PASSWORD or ADMIN_USER_PASSWORD_HASH must be set", prefix)
	}
	if err := checkPasswordStrength(pass, policy); err != nil {
		return fmt.Errorf("%s: ADMIN_USER_PASSWORD %w", prefix, err)
	}
	return nil
}

var (
	errTooShort = errors.New("is too short")
	errNumeric  = errors.New("must not be a simple numeric pattern")
	errKeyboard = errors.New("must not be a keyboard pattern")
	errWeak     = errors.New("must not be based on common weak passwords")
)

func checkPasswordStrength(pass string, policy CredentialPolicy) error {
	minLen := policy.MinPasswordLength
	if minLen <= 0 {
		minLen = 12
	}
	if len(pass) < minLen {
		return fmt.Errorf("%w (minimum %d characters)", errTooShort, minLen)
	}
	if isSimpleNumericPattern(pass) {
		return errNumeric
	}
	if isKeyboardPattern(pass) {
		return errKeyboard
	}

	weak := policy.WeakPasswords
	if len(weak) == 0 {
		weak = defaultWeakPasswords
	}
	lower := strings.ToLower(pass)
	for _, w := range weak {
		w = strings.ToLower(w)
		if lower == w || (strings.HasPrefix(lower, w) && len(pass) < minLen+5) {
			return errWeak
		}
	}
	return nil
}

// isSimpleNumericPattern catches "111111111111" and ascending or descending
// digit runs such as "123456789012".
func isSimpleNumericPattern(pass string) bool {
	if isRepeatedChar(pass) {
		return true
	}
	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	ascending, descending := true, true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		// 9 -> 0 wraps
		if diff != 1 && diff != -9 {
			ascending = false
		}
		if diff != -1 && diff != 9 {
			descending = false
		}
	}
	return ascending || descending
}

func isRepeatedChar(pass string) bool {
	if pass == "" {
		return false
	}
	return strings.Count(pass, pass[:1]) == len(pass)
}

func isKeyboardPattern(pass string) bool {
	lower := strings.ToLower(pass)
	for _, p := range keyboardPatterns {
		if strings.Contains(lower, p) || strings.Contains(lower, reverse(p)) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
