// Package screens holds the view-state of every screen of the client. A
// screen owns one or more result.Holder slots, issues one request per user
// action, and stops publishing once it is disposed.
//
// Screens do not render anything; the cli package observes their holders.
package screens
