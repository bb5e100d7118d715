// Package form models the lead form on the client side: field values, the
// submission lifecycle and the model dropdown, independent of any UI toolkit.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/navarrastar/coming-soon/pkg/models"
)

// SuccessDisplay is how long the success notice stays up before the form returns to idle.
const SuccessDisplay = 5 * time.Second

// Messages the form shows without asking the server.
const (
	MsgFillAll      = "Please fill in all fields"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSubmitFailed = "Failed to submit form. Please try again."
	MsgNetworkError = "Network error. Please check your connection and try again."
)

var (
	// ErrInvalidInput means BeginSubmit rejected the fields without sending anything.
	ErrInvalidInput = errors.New("form input is invalid")
	// ErrInFlight means a submission is already pending.
	ErrInFlight = errors.New("submission already in flight")
)

// Status is the submission lifecycle state.
type Status int

const (
	// StatusIdle is the resting state; nothing is shown.
	StatusIdle Status = iota
	// StatusSubmitting means a request is in flight and the button is disabled.
	StatusSubmitting
	// StatusSucceeded shows the thank-you notice until SuccessDisplay elapses.
	StatusSucceeded
	// StatusFailed shows an error message until the next submit.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Field names a text input of the form.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// Outcome is how a submission settled.
type Outcome struct {
	OK bool
	// Message is the server's message: success text or error text. May be empty.
	Message string
	// Err is set when no response arrived at all.
	Err error
}

// State is the whole form: raw field values, the dropdown and the lifecycle status.
type State struct {
	Name     string
	Email    string
	Phone    string
	Dropdown *Dropdown

	status    Status
	message   string
	settledAt time.Time
}

// New returns an idle form offering the given models.
func New(modelOptions []string) *State {
	return &State{Dropdown: NewDropdown(modelOptions)}
}

func (s *State) Status() Status  { return s.status }
func (s *State) Message() string { return s.message }

// Submitting reports whether the submit control should be disabled.
func (s *State) Submitting() bool { return s.status == StatusSubmitting }

// Set records user input for a text field.
func (s *State) Set(f Field, value string) {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	}
}

// Model returns the selected model, or models.PlaceholderModel when none is chosen.
func (s *State) Model() string {
	return s.Dropdown.Selected()
}

// BeginSubmit validates the fields and moves the form to submitting.
// On invalid input the form becomes failed with a readable message and
// ErrInvalidInput is returned; nothing should be sent in that case.
func (s *State) BeginSubmit() (models.Lead, error) {
	if s.status == StatusSubmitting {
		return models.Lead{}, ErrInFlight
	}

	lead := models.Lead{
		Name:  strings.TrimSpace(s.Name),
		Email: strings.TrimSpace(s.Email),
		Phone: strings.TrimSpace(s.Phone),
		Model: s.Model(),
	}
	if lead.Name == "" || lead.Email == "" || lead.Phone == "" || lead.Model == models.PlaceholderModel {
		s.fail(MsgFillAll)
		return models.Lead{}, ErrInvalidInput
	}
	if !models.EmailPattern.MatchString(lead.Email) {
		s.fail(MsgInvalidEmail)
		return models.Lead{}, ErrInvalidInput
	}

	s.status = StatusSubmitting
	s.message = ""
	return lead, nil
}

// Settle applies the result of the in-flight submission. It is a no-op
// unless the form is submitting.
func (s *State) Settle(out Outcome, now time.Time) {
	if s.status != StatusSubmitting {
		return
	}
	switch {
	case out.Err != nil:
		s.fail(MsgNetworkError)
	case out.OK:
		s.Name, s.Email, s.Phone = "", "", ""
		s.Dropdown.Reset()
		s.status = StatusSucceeded
		s.message = ""
		s.settledAt = now
	case out.Message != "":
		s.fail(out.Message)
	default:
		s.fail(MsgSubmitFailed)
	}
}

// Tick clears an expired success notice.
func (s *State) Tick(now time.Time) {
	if s.status == StatusSucceeded && now.Sub(s.settledAt) >= SuccessDisplay {
		s.status = StatusIdle
	}
}

func (s *State) fail(msg string) {
	s.status = StatusFailed
	s.message = msg
}
