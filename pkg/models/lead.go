package models

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PlaceholderModel is the unselected state of the product variant choice.
const PlaceholderModel = "Choose Model"

// DefaultModels are the product variants offered when none are configured.
var DefaultModels = []string{"FREE", "DREAM"}

// EmailPattern is the loose local@domain.tld shape shared by the page and the API.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation failures in precedence order.
var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrUnknownModel   = errors.New("invalid model selection")
)

// Lead represents the data structure coming from the coming-soon form
type Lead struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Email string `json:"email" form:"email" validate:"required,leademail"`
	Phone string `json:"phone" form:"phone" validate:"required"`
	Model string `json:"model" form:"model" validate:"required,notplaceholder,leadmodel"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (l Lead) Normalize() Lead {
	return Lead{
		Name:  strings.TrimSpace(l.Name),
		Email: strings.TrimSpace(l.Email),
		Phone: strings.TrimSpace(l.Phone),
		Model: strings.TrimSpace(l.Model),
	}
}

// Row returns the spreadsheet row in fixed column order: name, email, phone, model.
func (l Lead) Row() []interface{} {
	return []interface{}{l.Name, l.Email, l.Phone, l.Model}
}

// Validator checks leads against the required-field, email and variant rules.
type Validator struct {
	validate *validator.Validate
	models   []string
}

// NewValidator builds a Validator accepting the given product variants.
// An empty list falls back to DefaultModels.
func NewValidator(models []string) *Validator {
	if len(models) == 0 {
		models = DefaultModels
	}
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		models:   slices.Clone(models),
	}
	rules := map[string]validator.Func{
		"leademail": func(fl validator.FieldLevel) bool {
			return EmailPattern.MatchString(fl.Field().String())
		},
		"notplaceholder": func(fl validator.FieldLevel) bool {
			return fl.Field().String() != PlaceholderModel
		},
		"leadmodel": func(fl validator.FieldLevel) bool {
			return slices.Contains(v.models, fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("error registering %q validation: %v", tag, err))
		}
	}
	return v
}

// Models returns the accepted product variants in display order.
func (v *Validator) Models() []string {
	return slices.Clone(v.models)
}

// Validate normalizes the lead and checks it. The first failing rule wins:
// missing fields, then email shape, then unknown variant.
func (v *Validator) Validate(l Lead) error {
	err := v.validate.Struct(l.Normalize())
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	var badEmail, badModel bool
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "leademail":
			badEmail = true
		case "leadmodel":
			badModel = true
		default:
			return ErrFieldsRequired
		}
	}
	if badEmail {
		return ErrInvalidEmail
	}
	if badModel {
		return ErrUnknownModel
	}
	return nil
}
