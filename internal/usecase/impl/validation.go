package impl

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
		return entity.BloodType(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}

	return v
}

// validationRule maps a failed validator tag to the message the client sees.
// An empty field matches the tag on any field.
type validationRule struct {
	tag     string
	field   string
	message string
}

// validateInput runs the struct tags on input. When several fields fail, the
// first rule in rules that matches any failure decides the message.
func validateInput(input any, rules []validationRule) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	for _, rule := range rules {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Tag() == rule.tag && (rule.field == "" || fieldErr.StructField() == rule.field) {
				return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage(rule.message))
			}
		}
	}

	return errors.WithStack(domainerrors.ErrValidationFailed)
}

// contactLengthRules mirror the VARCHAR widths of the name, email and phone columns.
var contactLengthRules = []validationRule{
	{tag: "max", field: "Name", message: "Name must be at most 100 characters long"},
	{tag: "max", field: "Email", message: "Email must be at most 255 characters long"},
	{tag: "max", field: "Phone", message: "Phone must be at most 32 characters long"},
}

var (
	registerRules = append([]validationRule{
		{tag: "required", message: "All required fields must be provided"},
		{tag: "eqfield", message: "Passwords do not match"},
		{tag: "min", message: "Password must be at least 6 characters long"},
		{tag: "bloodtype", message: "Invalid blood type"},
	}, contactLengthRules...)

	loginRules = []validationRule{
		{tag: "required", message: "Email and password are required"},
	}

	scheduleRules = append([]validationRule{
		{tag: "required", message: "All fields are required"},
		{tag: "datetime", message: "Donation date must be a valid date (YYYY-MM-DD)"},
		{tag: "bloodtype", message: "Invalid blood type"},
	}, contactLengthRules...)
)
