package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/navarrastar/coming-soon/pkg/clients/sheets"
	"github.com/navarrastar/coming-soon/pkg/config"
	"github.com/navarrastar/coming-soon/pkg/models"
	"github.com/navarrastar/coming-soon/pkg/utils"
)

// LeadSubmissionService defines the interface for handling form submissions
type LeadSubmissionService interface {
	SubmitLead(ctx context.Context, lead models.Lead) error
	Models() []string
}

type leadSubmissionServiceImpl struct {
	validator *models.Validator
	newSheets sheets.Factory
	config    *config.Config
	logger    *slog.Logger
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(
	newSheets sheets.Factory,
	config *config.Config,
	logger *slog.Logger,
) LeadSubmissionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &leadSubmissionServiceImpl{
		validator: models.NewValidator(config.LeadModels),
		newSheets: newSheets,
		config:    config,
		logger:    logger,
	}
}

func (s *leadSubmissionServiceImpl) Models() []string {
	return s.validator.Models()
}

// SubmitLead validates the lead and appends it as one spreadsheet row.
// It returns a *ValidationError, *ConfigurationError or *UpstreamError.
func (s *leadSubmissionServiceImpl) SubmitLead(ctx context.Context, lead models.Lead) error {
	lead = lead.Normalize()
	if err := s.validate(lead); err != nil {
		return err
	}

	contact := utils.ShortHash(lead.Email)
	log := s.logger.With("contact", contact, "model", lead.Model)

	if !s.config.HasSheetsConfig() {
		log.Error("spreadsheet credentials or sheet id not configured")
		return &ConfigurationError{Message: MsgMissingConfig}
	}

	if s.config.UpstreamTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.UpstreamTimeout)
		defer cancel()
	}

	client, err := s.newSheets(ctx, []byte(s.config.GoogleCredentials))
	if err != nil {
		if errors.Is(err, sheets.ErrInvalidCredentials) {
			log.Error("could not parse service account credentials", "error", err)
			return &ConfigurationError{Message: MsgInvalidCredentials, Err: err}
		}
		log.Error("could not create spreadsheet client", "error", err)
		return newUpstreamError(err)
	}

	sheetName, err := s.resolveSheetName(ctx, client)
	if err != nil {
		log.Error("could not resolve sheet name", "error", err)
		return newUpstreamError(err)
	}

	if err := client.AppendRow(ctx, s.config.GoogleSheetID, sheetName, lead.Row()); err != nil {
		log.Error("could not append lead", "sheet", sheetName, "error", err)
		return newUpstreamError(err)
	}

	log.Info("lead submitted", "sheet", sheetName)
	return nil
}

func (s *leadSubmissionServiceImpl) validate(lead models.Lead) error {
	err := s.validator.Validate(lead)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrInvalidEmail):
		return &ValidationError{Message: MsgInvalidEmail, Err: err}
	case errors.Is(err, models.ErrUnknownModel):
		return &ValidationError{Message: MsgUnknownModel, Err: err}
	default:
		return &ValidationError{Message: MsgFieldsRequired, Err: err}
	}
}

// resolveSheetName looks up the first sheet's title. Unless strict discovery
// is on, a failed lookup falls back to the configured default name.
func (s *leadSubmissionServiceImpl) resolveSheetName(ctx context.Context, client sheets.Client) (string, error) {
	title, err := client.FirstSheetTitle(ctx, s.config.GoogleSheetID)
	if err == nil {
		return title, nil
	}
	if s.config.SheetDiscoveryStrict {
		return "", err
	}
	s.logger.Warn("sheet discovery failed, using default sheet name",
		"default", s.config.DefaultSheetName, "error", err)
	return s.config.DefaultSheetName, nil
}
