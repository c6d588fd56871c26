package session

import "context"

// Keys used in the store. All values are plain strings.
const (
	KeyToken             = "auth_token"
	KeyVerificationToken = "verification_token"

	KeyRegEmail     = "reg_email"
	KeyRegFullName  = "reg_fullname"
	KeyRegBirthDate = "reg_birthdate"
	KeyRegIdentity  = "reg_identity"

	KeyProfileFullName    = "profile_full_name"
	KeyProfileBirthDate   = "profile_birth_date"
	KeyProfileIdentity    = "profile_identity_type"
	KeyProfileInstitution = "profile_institution"
	KeyProfilePictureURL  = "profile_picture_url"
	ProfilePrefix         = "profile_"
)

// RegistrationKeys lists the draft keys written by the registration form.
var RegistrationKeys = []string{KeyRegEmail, KeyRegFullName, KeyRegBirthDate, KeyRegIdentity}

// Store is the single persisted key/value namespace of the client. Every
// call is atomic on its own; there are no multi-key transactions.
type Store interface {
	// Token returns the bearer credential, or "" when none is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error

	// Get reports ok=false when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all values or none.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error

	Close() error
}
