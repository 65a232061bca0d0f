package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestValidateAdmin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("whatever"), bcrypt.MinCost)
	policy := CredentialPolicy{MinPasswordLength: 12}

	tests := []struct {
		name    string
		user    string
		pass    string
		hash    string
		wantErr string
	}{
		{"strong password", "admin@example.com", "Tr0ub4dor&3-horse", "", ""},
		{"bcrypt hash skips strength checks", "admin@example.com", "", string(hash), ""},
		{"empty user", "", "Tr0ub4dor&3-horse", "", "ADMIN_USER must not be empty"},
		{"user not an email", "admin", "Tr0ub4dor&3-horse", "", "ADMIN_USER must be an email address"},
		{"no password at all", "admin@example.com", "", "", "must be set"},
		{"bad hash", "admin@example.com", "", "$2a$bogus", "not a bcrypt hash"},
		{"too short", "admin@example.com", "short1!", "", "is too short"},
		{"repeated digits", "admin@example.com", "111111111111", "", "simple numeric pattern"},
		{"ascending digits", "admin@example.com", "123456789012", "", "simple numeric pattern"},
		{"keyboard run", "admin@example.com", "myqwertypass99", "", "keyboard pattern"},
		{"reversed keyboard run", "admin@example.com", "lkjhgfdsa-1234", "", "keyboard pattern"},
		{"weak prefix", "admin@example.com", "password12345", "", "common weak passwords"},
		{"long weak prefix is allowed", "admin@example.com", "password-but-much-longer-now", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAdmin(tt.user, tt.pass, tt.hash, policy)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
				if tt.pass != "" {
					assert.NotContains(t, err.Error(), tt.pass)
				}
			}
		})
	}
}

func TestValidateAdmin_CustomWeakList(t *testing.T) {
	policy := CredentialPolicy{MinPasswordLength: 8, WeakPasswords: []string{"Newsroom2024"}}
	assert.Error(t, validateAdmin("admin@example.com", "newsroom2024", "", policy))
	assert.NoError(t, validateAdmin("admin@example.com", "admin-but-fine", "", policy))
}

func TestValidateAdminCredentials_Env(t *testing.T) {
	t.Setenv("ADMIN_USER", "admin@example.com")
	t.Setenv("ADMIN_USER_PASSWORD", "Tr0ub4dor&3-horse")
	t.Setenv("ADMIN_USER_PASSWORD_HASH", "")
	assert.NoError(t, ValidateAdminCredentials(CredentialPolicy{}))

	t.Setenv("ADMIN_USER_PASSWORD", "")
	assert.Error(t, ValidateAdminCredentials(CredentialPolicy{}))
}
