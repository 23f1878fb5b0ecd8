package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conference-webapp/errors"
)

func validSession() Session {
	return Session{
		Title:      "Opening keynote",
		Topic:      "Go at scale",
		SessionDay: "2026-10-01",
		StartTime:  "09:00",
		EndTime:    "10:30",
		Room:       "A101",
	}
}

func TestSessionValidate(t *testing.T) {
	assert.NoError(t, validSession().Validate(validConference()))
}

func TestSessionTimeOrder(t *testing.T) {
	sess := validSession()
	sess.StartTime = "14:00"
	sess.EndTime = "13:00"

	err := sess.Validate(validConference())
	assert.Error(t, err)

	verr, ok := errors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, errors.TimeOrder, verr.Kind)
}

func TestSessionZeroLength(t *testing.T) {
	sess := validSession()
	sess.StartTime = "14:00"
	sess.EndTime = "14:00"

	assert.Error(t, sess.Validate(validConference()))
}

func TestSessionDayContainment(t *testing.T) {
	sess := validSession()
	sess.SessionDay = "2026-10-04"

	err := sess.Validate(validConference())
	assert.Error(t, err)

	verr, ok := errors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, errors.DateRange, verr.Kind)

	sess.SessionDay = "2026-09-30"
	_, ok = errors.IsValidation(sess.Validate(validConference()))
	assert.True(t, ok)

	// boundary days are inside the span
	sess.SessionDay = "2026-10-01"
	assert.NoError(t, sess.Validate(validConference()))
	sess.SessionDay = "2026-10-03"
	assert.NoError(t, sess.Validate(validConference()))
}

func TestSessionRoomFormat(t *testing.T) {
	sess := validSession()
	sess.Room = "room 12-b"

	err := sess.Validate(validConference())
	assert.Error(t, err)

	verr, ok := errors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, errors.Format, verr.Kind)
}

func TestSessionWithoutConferenceDates(t *testing.T) {
	conf := validConference()
	conf.StartDate = ""
	conf.EndDate = ""

	assert.NoError(t, validSession().Validate(conf))
}
