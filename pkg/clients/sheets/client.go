package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Scope grants read and write access to spreadsheets.
const Scope = sheetsapi.SpreadsheetsScope

const (
	// UserEntered parses values as if typed into the Sheets UI.
	UserEntered = "USER_ENTERED"
	// InsertRows inserts new rows instead of overwriting the next empty ones.
	InsertRows = "INSERT_ROWS"
)

// ErrInvalidCredentials is returned when the credentials blob cannot be parsed.
var ErrInvalidCredentials = errors.New("invalid credentials format")

// ErrNoSheets is returned when a spreadsheet reports no sheets at all.
var ErrNoSheets = errors.New("spreadsheet has no sheets")

// Client defines the interface for interacting with the Google Sheets API
type Client interface {
	FirstSheetTitle(ctx context.Context, spreadsheetID string) (string, error)
	AppendRow(ctx context.Context, spreadsheetID, sheetName string, row []interface{}) error
}

// Factory builds a Client from a service-account credentials blob.
type Factory func(ctx context.Context, credentialsJSON []byte) (Client, error)

type clientImpl struct {
	service *sheetsapi.Service
	logger  *slog.Logger
}

// NewFactory returns a Factory that passes opts to every Sheets service it builds.
func NewFactory(logger *slog.Logger, opts ...option.ClientOption) Factory {
	return func(ctx context.Context, credentialsJSON []byte) (Client, error) {
		return NewClient(ctx, logger, credentialsJSON, opts...)
	}
}

// NewClient creates a new Sheets client authenticated with the given credentials
func NewClient(ctx context.Context, logger *slog.Logger, credentialsJSON []byte, opts ...option.ClientOption) (Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	clientOpts := append([]option.ClientOption{option.WithCredentials(creds)}, opts...)
	service, err := sheetsapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating Sheets service: %w", err)
	}

	return &clientImpl{service: service, logger: logger}, nil
}

func (c *clientImpl) FirstSheetTitle(ctx context.Context, spreadsheetID string) (string, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("error reading spreadsheet metadata: %w", err)
	}

	if len(spreadsheet.Sheets) == 0 {
		return "", ErrNoSheets
	}
	first := spreadsheet.Sheets[0]
	if first.Properties == nil || first.Properties.Title == "" {
		return "", ErrNoSheets
	}
	return first.Properties.Title, nil
}

func (c *clientImpl) AppendRow(ctx context.Context, spreadsheetID, sheetName string, row []interface{}) error {
	values := &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}

	resp, err := c.service.Spreadsheets.Values.Append(spreadsheetID, A1Range(sheetName), values).
		ValueInputOption(UserEntered).
		InsertDataOption(InsertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("error appending row: %w", err)
	}

	updated := ""
	if resp.Updates != nil {
		updated = resp.Updates.UpdatedRange
	}
	c.logger.Info("appended row to spreadsheet", "sheet", sheetName, "updated_range", updated)
	return nil
}

var bareSheetName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// A1Range turns a sheet title into an A1 range covering the whole sheet.
// Titles with spaces or punctuation are single-quoted, with embedded quotes doubled.
func A1Range(sheetName string) string {
	if bareSheetName.MatchString(sheetName) {
		return sheetName
	}
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
}
