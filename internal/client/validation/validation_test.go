package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() Registration {
	return Registration{
		Email:           "budi@example.com",
		FullName:        "Budi Santoso",
		BirthDate:       "31/01/2000",
		IdentityType:    "tuli",
		Password:        "Abcd1234!",
		PasswordConfirm: "Abcd1234!",
	}
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	var ve *Error
	require.True(t, errors.As(err, &ve), "expected *validation.Error, got %v", err)
	return ve.Message
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Login("a@b.c", "x"))
	assert.Equal(t, MsgLoginBlank, messageOf(t, Login("", "x")))
	assert.Equal(t, MsgLoginBlank, messageOf(t, Login("a@b.c", "   ")))
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Registration)
		want   string
	}{
		{"valid", func(*Registration) {}, ""},
		{"blank full name", func(r *Registration) { r.FullName = " " }, MsgFieldsBlank},
		{"blank confirm", func(r *Registration) { r.PasswordConfirm = "" }, MsgFieldsBlank},
		{"bad email", func(r *Registration) { r.Email = "budi.example.com" }, MsgInvalidEmail},
		{"mismatch", func(r *Registration) { r.PasswordConfirm = "Abcd1234?" }, MsgPasswordMismatch},
		{"short", func(r *Registration) { r.Password, r.PasswordConfirm = "abc", "abc" }, MsgPasswordPolicy},
		{"no upper", func(r *Registration) { r.Password, r.PasswordConfirm = "abcd1234!", "abcd1234!" }, MsgPasswordPolicy},
		{"no special", func(r *Registration) { r.Password, r.PasswordConfirm = "Abcd12345", "Abcd12345" }, MsgPasswordPolicy},
		{"any symbol counts", func(r *Registration) { r.Password, r.PasswordConfirm = "Abcd1234_", "Abcd1234_" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegistration()
			tt.mutate(&r)
			err := Register(r)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, messageOf(t, err))
		})
	}
}

func TestChangePassword(t *testing.T) {
	assert.NoError(t, ChangePassword("Abcd1234!", "Abcd1234!", "vt"))
	assert.Equal(t, MsgPasswordMismatch, messageOf(t, ChangePassword("Abcd1234!", "Abcd1234@", "vt")))
	// Only !@#$ count as special here.
	assert.Equal(t, MsgPasswordPolicy, messageOf(t, ChangePassword("Abcd1234_", "Abcd1234_", "vt")))
	assert.Equal(t, MsgNoVerification, messageOf(t, ChangePassword("Abcd1234$", "Abcd1234$", "")))
}

func TestPolicy_CountsCharacters(t *testing.T) {
	// 7 characters, more than 8 bytes.
	assert.False(t, RegistrationPassword("Aé1!éé7"))
	assert.True(t, RegistrationPassword("Aé1!éé7x"))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("a.b+c@domain"))
	assert.False(t, Email("@domain"))
	assert.False(t, Email("a b@domain"))
	assert.False(t, Email("nodomain@"))
}

func TestBirthDate(t *testing.T) {
	got, err := BirthDate("31/01/2000")
	require.NoError(t, err)
	assert.Equal(t, "2000-01-31", got)

	got, err = BirthDate("2000-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2000-01-31", got)

	_, err = BirthDate("31/13/2000")
	assert.Equal(t, MsgInvalidBirthDate, messageOf(t, err))

	_, err = BirthDate("")
	assert.Equal(t, MsgBirthDateBlank, messageOf(t, err))

	assert.Equal(t, "31/01/2000", DisplayDate("2000-01-31"))
	assert.Equal(t, "garbage", DisplayDate("garbage"))
}

func TestIdentityType(t *testing.T) {
	got, err := IdentityType(" Tuli ")
	require.NoError(t, err)
	assert.Equal(t, IdentityDeaf, got)

	got, err = IdentityType("dengar")
	require.NoError(t, err)
	assert.Equal(t, IdentityHearing, got)

	_, err = IdentityType("other")
	assert.Error(t, err)
}
