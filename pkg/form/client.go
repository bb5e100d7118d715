package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/navarrastar/coming-soon/pkg/models"
)

// SubmitPath is where the lead endpoint is mounted.
const SubmitPath = "/api/submit"

// Submitter sends one lead and reports how it settled.
type Submitter interface {
	Submit(ctx context.Context, lead models.Lead) Outcome
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Submitter that posts JSON to baseURL + SubmitPath.
// A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) Submitter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		endpoint:   strings.TrimRight(baseURL, "/") + SubmitPath,
		httpClient: httpClient,
	}
}

func (c *clientImpl) Submit(ctx context.Context, lead models.Lead) Outcome {
	payload, err := json.Marshal(lead)
	if err != nil {
		return Outcome{Err: fmt.Errorf("error creating payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Outcome{Err: fmt.Errorf("error creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Outcome{Err: fmt.Errorf("error submitting lead: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return Outcome{Err: fmt.Errorf("error reading response: %w", err)}
	}

	var response struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	// Proxies may answer with HTML; that still counts as a server response.
	_ = json.Unmarshal(body, &response)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{OK: true, Message: response.Message}
	}
	return Outcome{Message: response.Error}
}

// Run drives one submission: validate, send, settle. It returns ErrInvalidInput
// or ErrInFlight when nothing was sent.
func Run(ctx context.Context, s *State, sub Submitter, now func() time.Time) error {
	lead, err := s.BeginSubmit()
	if err != nil {
		return err
	}
	s.Settle(sub.Submit(ctx, lead), now())
	return nil
}
