package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/validation"
)

const (
	MsgUnavailable = "Cannot reach the server, check your connection"
	MsgEmptyBody   = "No data available"
	MsgCancelled   = "Cancelled"
	MsgSession     = "Session expired, please log in again"
	MsgUnknown     = "Unknown error occurred"
)

// Message turns any error from the service layer into the text carried by a
// Failed result.
func Message(err error) string {
	var ve *validation.Error
	var se *api.StatusError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MsgCancelled
	case errors.Is(err, api.ErrUnavailable):
		return MsgUnavailable
	case errors.Is(err, api.ErrEmptyBody):
		return MsgEmptyBody
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
		if se.Code == 401 {
			return MsgSession
		}
		return fmt.Sprintf("Request failed (%d)", se.Code)
	}
	return MsgUnknown
}
