// Package validation configures the form validator shared by the services.
//
// Phone numbers are accepted as ten digits, optionally split 3-3-4 by
// hyphens: "415-123-4567" or "4151234567".
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

var phonePattern = regexp.MustCompile(`^[0-9]{3}-?[0-9]{3}-?[0-9]{4}$`)

var (
	states = toSet(models.States)
	genres = toSet(models.Genres)
)

// ValidPhone reports whether value is a well-formed phone number.
func ValidPhone(value string) bool {
	return phonePattern.MatchString(value)
}

// ValidState reports whether value is one of models.States.
func ValidState(value string) bool {
	_, ok := states[value]
	return ok
}

// ValidGenre reports whether value is one of models.Genres.
func ValidGenre(value string) bool {
	_, ok := genres[value]
	return ok
}

// New returns a validator with the phone, state and genre rules registered.
// Field names in errors use the json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "phone", ValidPhone)
	mustRegister(v, "state", ValidState)
	mustRegister(v, "genre", ValidGenre)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic("register " + tag + " validation: " + err.Error())
	}
}

// Struct validates s and converts any failure into an *interfaces.ValidationError.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = message(fe)
	}
	return &interfaces.ValidationError{Fields: fields}
}

// fieldName strips the struct prefix and any slice index so that a bad genre
// reports as "genres".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "needs at least " + fe.Param() + " value(s)"
	case "max":
		return "is too long"
	case "gt":
		return "must be a positive id"
	case "url":
		return "must be a valid URL"
	case "phone":
		return "must look like 415-123-4567"
	case "state":
		return "is not a known state"
	case "genre":
		return "contains an unknown genre"
	default:
		return "is invalid"
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
