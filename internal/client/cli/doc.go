// Package cli provides the interactive StuDeaf command-line client.
//
// It wires configuration, the session store, the REST client, services and
// the screen router, then runs a REPL. On start the stored credential is
// checked once; a valid one lands on the home screen, anything else on
// login.
//
// Key features:
//   - Login / Register (with a resumable registration draft) / Logout
//   - Home and profile, profile editing, password change
//   - JBI interpreter listing with search, and the user's bookings
//   - Forum summaries with search and topic filter
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
