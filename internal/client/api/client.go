package api

import "context"

// Client is the set of backend calls the application makes. Every method
// issues exactly one HTTP request.
type Client interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Profile(ctx context.Context) (*UserProfile, error)
	UpdateProfile(ctx context.Context, req ProfileUpdate) (*UserProfile, error)
	VerifyPassword(ctx context.Context, currentPassword string) (*VerifyPasswordResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (*ChangePasswordResponse, error)
	Translators(ctx context.Context) (*TranslatorList, error)
	MyOrders(ctx context.Context) (*OrderList, error)
	ForumPosts(ctx context.Context) ([]ForumPost, error)
}

// Credentials is what the transport needs from the session store.
type Credentials interface {
	// Token returns the stored bearer token, or "" when there is none.
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}
