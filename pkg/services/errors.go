package services

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Messages returned to callers in the error and message bodies.
const (
	MsgFieldsRequired     = "All fields are required"
	MsgInvalidEmail       = "Invalid email format"
	MsgUnknownModel       = "Invalid model selection"
	MsgMissingConfig      = "Server configuration error. Please check your environment variables."
	MsgInvalidCredentials = "Invalid credentials format"
	MsgSubmitFailed       = "Failed to submit form. Please try again."
	MsgSubmitted          = "Form submitted successfully"
)

// ValidationError is a client-correctable problem with the submitted lead.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Err }

// ConfigurationError means the deployment is missing or carries broken settings.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}
func (e *ConfigurationError) Unwrap() error { return e.Err }

// UpstreamError wraps a failure talking to the spreadsheet service.
// Message is what the caller sees.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message }
func (e *UpstreamError) Unwrap() error { return e.Err }

// newUpstreamError exposes the spreadsheet API's own message, or the root
// cause when the API was never reached, without our wrapping prefixes.
func newUpstreamError(err error) *UpstreamError {
	msg := upstreamMessage(err)
	if msg == "" {
		msg = MsgSubmitFailed
	}
	return &UpstreamError{Message: msg, Err: err}
}

func upstreamMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
