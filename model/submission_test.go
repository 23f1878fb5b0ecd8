package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"conference-webapp/errors"
)

func validSubmission() Submission {
	return Submission{
		Title:          "Generics in practice",
		Abstract:       "A look at type parameters in production code.",
		Keywords:       "go, generics, types",
		Status:         StatusSubmitted,
		SubmissionDate: "2026-09-01",
		Owner:          "alice",
	}
}

func TestSubmissionValidate(t *testing.T) {
	err := validSubmission().Validate(validConference(), "2026-09-01")
	assert.NoError(t, err)
}

func TestKeywordList(t *testing.T) {
	sub := validSubmission()
	sub.Keywords = " ai , ml,, nlp ,"

	assert.Equal(t, []string{"ai", "ml", "nlp"}, sub.KeywordList())
}

func TestKeywordLimit(t *testing.T) {
	sub := validSubmission()
	sub.Keywords = "ai, ml, nlp, db, os, net, sec, web, iot, ar, vr"

	err := sub.Validate(validConference(), "2026-09-01")
	assert.Error(t, err)

	verr, ok := errors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, errors.KeywordLimit, verr.Kind)

	// exactly ten is still fine
	sub.Keywords = "ai, ml, nlp, db, os, net, sec, web, iot, ar"
	assert.NoError(t, sub.Validate(validConference(), "2026-09-01"))
}

func TestLateSubmission(t *testing.T) {
	sub := validSubmission()
	sub.SubmissionDate = "2026-10-02"

	err := sub.Validate(validConference(), "2026-10-02")
	assert.Error(t, err)

	verr, ok := errors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, errors.LateSubmission, verr.Kind)
}

func TestLateSubmissionUsesTodayWhenDateUnset(t *testing.T) {
	sub := validSubmission()
	sub.SubmissionDate = ""

	assert.NoError(t, sub.Validate(validConference(), "2026-09-01"))
	assert.Error(t, sub.Validate(validConference(), "2026-10-02"))
}

func TestSubmissionOnConferenceStartDay(t *testing.T) {
	sub := validSubmission()
	sub.SubmissionDate = "2026-10-01"

	assert.NoError(t, sub.Validate(validConference(), "2026-10-01"))
}

func TestSubmissionWithoutConferenceDates(t *testing.T) {
	conf := validConference()
	conf.StartDate = ""

	assert.NoError(t, validSubmission().Validate(conf, "2026-09-01"))
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
}

func TestNewSubmissionIdFormat(t *testing.T) {
	format := regexp.MustCompile(`^SUB-[A-Z]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewSubmissionId()
		assert.Regexp(t, format, id)
		seen[id] = true
	}
	// 26^8 space makes collisions in a thousand draws vanishingly unlikely
	assert.Len(t, seen, 1000)
}
