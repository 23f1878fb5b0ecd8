package model

import (
	"time"

	"github.com/go-playground/validator/v10"

	"conference-webapp/errors"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var fieldValidator = validator.New()

// validateFields runs the struct tag rules and folds the first violation
// into a format validation error carrying the offending field name.
func validateFields(entity interface{}) error {
	err := fieldValidator.Struct(entity)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.NewValidation(errors.Format, "", err.Error())
	}
	first := verrs[0]
	return errors.NewValidation(errors.Format, first.Field(),
		"failed rule '"+first.Tag()+"'")
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func ParseTime(value string) (time.Time, error) {
	return time.Parse(TimeLayout, value)
}
