package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/errors"
)

type Session struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Title        string             `json:"title" bson:"title" validate:"required,max=255"`
	Topic        string             `json:"topic" bson:"topic" validate:"max=255"`
	SessionDay   string             `json:"session_day" bson:"session_day" validate:"required,datetime=2006-01-02"`
	StartTime    string             `json:"start_time" bson:"start_time" validate:"required,datetime=15:04"`
	EndTime      string             `json:"end_time" bson:"end_time" validate:"required,datetime=15:04"`
	Room         string             `json:"room" bson:"room" validate:"required,alphanum"`
	CreatedAt    string             `json:"created_at" bson:"created_at"`
	UpdatedAt    string             `json:"updated_at" bson:"updated_at"`
	ConferenceId primitive.ObjectID `json:"conference_id" bson:"conference_id"`
}

// Validate checks field rules (room name must stay alphanumeric), time
// ordering, and that the session day falls inside the span of the fetched
// parent conference.
func (sess Session) Validate(conf Conference) error {
	if err := validateFields(sess); err != nil {
		return err
	}

	start, err := ParseTime(sess.StartTime)
	if err != nil {
		return errors.NewValidation(errors.Format, "start_time", err.Error())
	}
	end, err := ParseTime(sess.EndTime)
	if err != nil {
		return errors.NewValidation(errors.Format, "end_time", err.Error())
	}
	if !end.After(start) {
		return errors.NewValidation(errors.TimeOrder, "end_time",
			"session end time must be later than its start time")
	}

	if conf.StartDate == "" || conf.EndDate == "" {
		return nil
	}
	day, err := ParseDate(sess.SessionDay)
	if err != nil {
		return errors.NewValidation(errors.Format, "session_day", err.Error())
	}
	confStart, err := ParseDate(conf.StartDate)
	if err != nil {
		return errors.NewValidation(errors.Format, "start_date", err.Error())
	}
	confEnd, err := ParseDate(conf.EndDate)
	if err != nil {
		return errors.NewValidation(errors.Format, "end_date", err.Error())
	}
	if day.Before(confStart) || day.After(confEnd) {
		return errors.NewValidation(errors.DateRange, "session_day",
			"session day must fall within the conference dates")
	}

	return nil
}
