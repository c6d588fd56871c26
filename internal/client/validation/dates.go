package validation

import (
	"strings"
	"time"
)

const (
	DisplayDateLayout = "02/01/2006"
	APIDateLayout     = "2006-01-02"
)

// Identity types accepted by the backend.
const (
	IdentityDeaf    = "tuli"
	IdentityHearing = "dengar"
)

// BirthDate converts a DD/MM/YYYY entry to the YYYY-MM-DD form the backend
// expects. Input already in YYYY-MM-DD is accepted unchanged.
func BirthDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if blank(s) {
		return "", fail(MsgBirthDateBlank)
	}
	if t, err := time.Parse(DisplayDateLayout, s); err == nil {
		return t.Format(APIDateLayout), nil
	}
	if t, err := time.Parse(APIDateLayout, s); err == nil {
		return t.Format(APIDateLayout), nil
	}
	return "", fail(MsgInvalidBirthDate)
}

// DisplayDate renders a backend date as DD/MM/YYYY, or returns s unchanged
// when it does not parse.
func DisplayDate(s string) string {
	t, err := time.Parse(APIDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}

// IdentityType normalises the identity entry to tuli or dengar.
func IdentityType(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case IdentityDeaf:
		return IdentityDeaf, nil
	case IdentityHearing:
		return IdentityHearing, nil
	}
	return "", fail(MsgInvalidIdentity)
}
