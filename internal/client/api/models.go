package api

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	BirthDate       string `json:"birth_date"`
	IdentityType    string `json:"identity_type"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserProfile is the server-owned user record. Nullable strings decode to "".
type UserProfile struct {
	ID                int    `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"full_name"`
	BirthDate         string `json:"birth_date"`
	IdentityType      string `json:"identity_type"`
	Institution       string `json:"institution"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Points            int    `json:"points"`
}

// ProfileUpdate is the body of PUT /users/profile. The picture URL is only
// sent when set.
type ProfileUpdate struct {
	FullName          string `json:"full_name"`
	BirthDate         string `json:"birth_date"`
	Institution       string `json:"institution"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

type VerifyPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
}

type VerifyPasswordResponse struct {
	VerificationToken string `json:"verification_token"`
}

type ChangePasswordRequest struct {
	VerificationToken  string `json:"verification_token"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

type ChangePasswordResponse struct {
	Message string `json:"message"`
}

// Translator is a sign-language interpreter offered through JBI.
type Translator struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	Name         string `json:"name"`
	Address      string `json:"alamat"`
	Availability bool   `json:"availability"`
	ProfilePic   string `json:"profile_pic"`
}

type TranslatorList struct {
	Items []Translator `json:"items"`
	Total int          `json:"total"`
}

type Review struct {
	ID      int    `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// TranslationOrder is a booking of an interpreter for a date and time slot
// ("08.00 - 09.00").
type TranslationOrder struct {
	ID          int          `json:"id"`
	Date        string       `json:"tanggal"`
	TimeSlot    string       `json:"time_slot"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	UserID      int          `json:"user_id"`
	Translator  *Translator  `json:"translator"`
	User        *UserProfile `json:"user"`
	Review      *Review      `json:"review"`
}

type OrderList struct {
	Items []TranslationOrder `json:"items"`
	Total int                `json:"total"`
}

// ForumPost is a published learning summary shown in the forum.
type ForumPost struct {
	ID          int    `json:"id"`
	Title       string `json:"judul"`
	Subtitle    string `json:"subjudul"`
	Topic       string `json:"topic"`
	Content     string `json:"isi"`
	IsPublished bool   `json:"is_published"`
	UserID      int    `json:"user_id"`
}
