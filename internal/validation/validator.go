package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/dto"
)

// Validator runs the static field rules declared in `validate` struct tags.
// Every violated rule is reported, in field order.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used by date rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New creates and configures the validator. It panics if a rule cannot be registered,
// since the server must not start with a partial rule set.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.SetTagName("validate")
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(dto.Date); ok {
			return d.Time
		}
		return nil
	}, dto.Date{})

	if err := registerRules(v.validate, v.now); err != nil {
		panic("failed to register validation rules: " + err.Error())
	}
	return v
}

// Struct validates obj and returns an *apperrors.ValidationError listing every
// violation, or nil when obj is valid.
func (v *Validator) Struct(obj any) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return apperrors.NewValidationError(messages)
}

func registerRules(v *validator.Validate, now func() time.Time) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return IsNotPast(t, now())
	}); err != nil {
		return err
	}
	return nil
}

// IsNotPast reports whether the calendar date of date is on or after the calendar
// date of now. Each side keeps its own location: a "2026-10-15" payload is
// compared as that day, whatever zone it was parsed in.
func IsNotPast(date, now time.Time) bool {
	y, m, d := date.Date()
	ty, tm, td := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	today := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return !day.Before(today)
}
