package form

import (
	"errors"
	"testing"
	"time"

	"github.com/navarrastar/coming-soon/pkg/models"
)

func filledState() *State {
	s := New([]string{"FREE", "DREAM"})
	s.Set(FieldName, " Ann ")
	s.Set(FieldEmail, "ann@x.com ")
	s.Set(FieldPhone, "123")
	s.Dropdown.Choose("FREE")
	return s
}

func TestBeginSubmitRequiresAllFields(t *testing.T) {
	tests := []struct {
		name string
		edit func(*State)
	}{
		{"blank name", func(s *State) { s.Set(FieldName, "   ") }},
		{"empty email", func(s *State) { s.Set(FieldEmail, "") }},
		{"empty phone", func(s *State) { s.Set(FieldPhone, "") }},
		{"no model", func(s *State) { s.Dropdown.Reset() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filledState()
			tt.edit(s)

			_, err := s.BeginSubmit()
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("BeginSubmit() error = %v, want %v", err, ErrInvalidInput)
			}
			if s.Status() != StatusFailed || s.Message() != MsgFillAll {
				t.Fatalf("state = %v/%q, want failed/%q", s.Status(), s.Message(), MsgFillAll)
			}
		})
	}
}

func TestBeginSubmitRejectsBadEmail(t *testing.T) {
	s := filledState()
	s.Set(FieldEmail, "not-an-email")

	if _, err := s.BeginSubmit(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("BeginSubmit() error = %v", err)
	}
	if s.Message() != MsgInvalidEmail {
		t.Fatalf("message = %q, want %q", s.Message(), MsgInvalidEmail)
	}
}

func TestBeginSubmitTrimsAndLocks(t *testing.T) {
	s := filledState()

	lead, err := s.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit() error = %v", err)
	}
	want := models.Lead{Name: "Ann", Email: "ann@x.com", Phone: "123", Model: "FREE"}
	if lead != want {
		t.Fatalf("lead = %+v, want %+v", lead, want)
	}
	if !s.Submitting() {
		t.Fatal("Submitting() = false after BeginSubmit")
	}
	if _, err := s.BeginSubmit(); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second BeginSubmit() error = %v, want %v", err, ErrInFlight)
	}
}

func TestBeginSubmitClearsPreviousError(t *testing.T) {
	s := filledState()
	s.Set(FieldEmail, "bad")
	_, _ = s.BeginSubmit()

	s.Set(FieldEmail, "ann@x.com")
	if _, err := s.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit() error = %v", err)
	}
	if s.Message() != "" {
		t.Fatalf("message = %q, want empty", s.Message())
	}
}

func TestSettleSuccessClearsFieldsAndExpires(t *testing.T) {
	s := filledState()
	_, _ = s.BeginSubmit()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	s.Settle(Outcome{OK: true, Message: "Form submitted successfully"}, now)

	if s.Status() != StatusSucceeded {
		t.Fatalf("status = %v, want succeeded", s.Status())
	}
	if s.Name != "" || s.Email != "" || s.Phone != "" || s.Model() != models.PlaceholderModel {
		t.Fatalf("fields not cleared: %+v model=%q", s, s.Model())
	}
	if s.Submitting() {
		t.Fatal("still submitting after settle")
	}

	s.Tick(now.Add(SuccessDisplay - time.Millisecond))
	if s.Status() != StatusSucceeded {
		t.Fatalf("status = %v before display elapsed", s.Status())
	}
	s.Tick(now.Add(SuccessDisplay))
	if s.Status() != StatusIdle {
		t.Fatalf("status = %v, want idle after display elapsed", s.Status())
	}
}

func TestSettleFailures(t *testing.T) {
	tests := []struct {
		name string
		out  Outcome
		want string
	}{
		{"server message", Outcome{Message: "Invalid email format"}, "Invalid email format"},
		{"no server message", Outcome{}, MsgSubmitFailed},
		{"network", Outcome{Err: errors.New("connection refused"), Message: "ignored"}, MsgNetworkError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filledState()
			_, _ = s.BeginSubmit()
			s.Settle(tt.out, time.Now())

			if s.Status() != StatusFailed || s.Message() != tt.want {
				t.Fatalf("state = %v/%q, want failed/%q", s.Status(), s.Message(), tt.want)
			}
			if s.Name != "Ann" && s.Name != " Ann " {
				t.Fatalf("fields cleared on failure: name=%q", s.Name)
			}
		})
	}
}

func TestSettleIgnoredWhenIdle(t *testing.T) {
	s := filledState()
	s.Settle(Outcome{OK: true}, time.Now())
	if s.Status() != StatusIdle || s.Name == "" {
		t.Fatalf("settle without submit changed state: %v", s.Status())
	}
}

func TestStatusString(t *testing.T) {
	for st, want := range map[Status]string{
		StatusIdle:       "idle",
		StatusSubmitting: "submitting",
		StatusSucceeded:  "succeeded",
		StatusFailed:     "failed",
		Status(42):       "unknown",
	} {
		if got := st.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", st, got, want)
		}
	}
}
