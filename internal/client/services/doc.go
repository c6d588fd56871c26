// Package services contains the application services of the StuDeaf client.
// Each service wraps one area of the backend API, runs client-side
// validation before any request, and keeps the session store in step with
// the server's answers.
package services
