// Package session owns the persisted client state: the bearer credential,
// the registration draft, the profile edit snapshot and the password change
// verification token. Store has sqlite, redis and in-memory backends.
//
// Validator decides at start-up whether the stored credential is still
// accepted by the backend.
package session
