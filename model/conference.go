package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/errors"
)

// Conference themes as stored; display names are a client concern.
const (
	ThemeComputerScience Theme = "IA"
	ThemeSciEngineering  Theme = "SE"
	ThemeSocialSciences  Theme = "SC"
)

type Theme string

type Conference struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2,max=255"`
	Theme       Theme              `json:"theme" bson:"theme" validate:"omitempty,oneof=IA SE SC"`
	Location    string             `json:"location" bson:"location" validate:"required,max=50"`
	Description string             `json:"description" bson:"description" validate:"max=300"`
	StartDate   string             `json:"start_date" bson:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string             `json:"end_date" bson:"end_date" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt   string             `json:"created_at" bson:"created_at"`
	UpdatedAt   string             `json:"updated_at" bson:"updated_at"`
}

// Validate checks field rules and the date ordering invariant. Unset dates
// pass; ordering is only enforced once both ends are present.
func (conf Conference) Validate() error {
	if err := validateFields(conf); err != nil {
		return err
	}

	if conf.StartDate == "" || conf.EndDate == "" {
		return nil
	}
	start, err := ParseDate(conf.StartDate)
	if err != nil {
		return errors.NewValidation(errors.Format, "start_date", err.Error())
	}
	end, err := ParseDate(conf.EndDate)
	if err != nil {
		return errors.NewValidation(errors.Format, "end_date", err.Error())
	}
	if start.After(end) {
		return errors.NewValidation(errors.DateOrder, "start_date",
			"conference start date cannot be later than its end date")
	}

	return nil
}

// IsOpenOn reports whether the conference still accepts submissions on the
// given day, i.e. its end date has not passed yet.
func (conf Conference) IsOpenOn(day string) bool {
	if conf.EndDate == "" {
		return true
	}
	end, err := ParseDate(conf.EndDate)
	if err != nil {
		return false
	}
	today, err := ParseDate(day)
	if err != nil {
		return false
	}
	return !end.Before(today)
}
