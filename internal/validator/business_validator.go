package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lfl-logistics/onboarding-service/internal/models"
)

// emailPattern accepts anything of the form local@domain.tld without whitespace.
// Deliberately permissive; deliverability is not checked here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// carrierRequiredFields maps required carrier payload fields to the display
// names surfaced in "missing fields" responses.
var carrierRequiredFields = []requiredField{
	{"dotNumber", "DOT Number"},
	{"mcNumber", "MC Number"},
	{"legalName", "Legal Company Name"},
	{"contactEmail", "Contact Email"},
	{"contactPhone", "Contact Phone"},
	{"password", "Password"},
	{"city", "City"},
	{"state", "State"},
}

var shipperRequiredFields = []requiredField{
	{"legalName", "Legal Company Name"},
	{"contactEmail", "Contact Email"},
	{"contactPhone", "Contact Phone"},
	{"password", "Password"},
	{"city", "City"},
	{"state", "State"},
}

type requiredField struct {
	key         string
	displayName string
}

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// MissingCarrierFields returns the display names of every required carrier
// registration field that is absent, in declaration order.
func (bv *BusinessValidator) MissingCarrierFields(req *CarrierOnboardRequest) []string {
	values := map[string]string{
		"dotNumber":    req.DOTNumber,
		"mcNumber":     req.MCNumber,
		"legalName":    req.LegalName,
		"contactEmail": req.ContactEmail,
		"contactPhone": req.ContactPhone,
		"password":     req.Password,
		"city":         req.City,
		"state":        req.State,
	}
	return missingFields(carrierRequiredFields, values)
}

// MissingShipperFields returns the display names of every required shipper
// registration field that is absent, in declaration order.
func (bv *BusinessValidator) MissingShipperFields(req *ShipperOnboardRequest) []string {
	values := map[string]string{
		"legalName":    req.LegalName,
		"contactEmail": req.ContactEmail,
		"contactPhone": req.ContactPhone,
		"password":     req.Password,
		"city":         req.City,
		"state":        req.State,
	}
	return missingFields(shipperRequiredFields, values)
}

func missingFields(required []requiredField, values map[string]string) []string {
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(values[field.key]) == "" {
			missing = append(missing, field.displayName)
		}
	}
	return missing
}

// ValidateCredentials checks email syntax and password length with a specific
// reason per violation. Runs only when both fields are present.
func (bv *BusinessValidator) ValidateCredentials(email, password string) ValidationErrors {
	var errors ValidationErrors

	if email != "" && !emailPattern.MatchString(email) {
		errors = append(errors, ValidationError{
			Field:   "contactEmail",
			Message: "Invalid email format",
			Value:   email,
			Rule:    "email_format",
		})
	}

	if password != "" && len(password) < MinPasswordLength {
		errors = append(errors, ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters",
			Rule:    "password_length",
		})
	}

	return errors
}

// IsValidEmail reports whether the email matches the accepted syntax
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	// Email syntax per the permissive pattern above
	bv.validate.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// Minimum password length
	bv.validate.RegisterValidation("password_length", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) >= MinPasswordLength
	})

	// Assignable profile statuses
	bv.validate.RegisterValidation("profile_status", func(fl validator.FieldLevel) bool {
		return models.IsValidProfileStatus(models.AccountStatus(fl.Field().String()))
	})

	// Registration roles (admin accounts are seeded, never registered)
	bv.validate.RegisterValidation("account_role", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "carrier", "shipper":
			return true
		}
		return false
	})

	// Wizard step names
	bv.validate.RegisterValidation("wizard_step", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "verification", "company_profile", "operations", "documentation", "agreement", "complete":
			return true
		}
		return false
	})
}
