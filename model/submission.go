package model

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/errors"
)

type SubmissionStatus string

const (
	StatusSubmitted   SubmissionStatus = "submitted"
	StatusUnderReview SubmissionStatus = "under_review"
	StatusAccepted    SubmissionStatus = "accepted"
	StatusRejected    SubmissionStatus = "rejected"
)

// IsTerminal reports whether the status freezes author-side edits.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

const MaxKeywords = 10

// MaxDailySubmissions is the per-user quota of submissions per calendar day.
const MaxDailySubmissions = 3

type Submission struct {
	Id             string             `json:"_id" bson:"_id"`
	Title          string             `json:"title" bson:"title" validate:"required,max=50"`
	Abstract       string             `json:"abstract" bson:"abstract" validate:"required"`
	Keywords       string             `json:"keywords" bson:"keywords"`
	Paper          string             `json:"paper" bson:"paper"`
	Status         SubmissionStatus   `json:"status" bson:"status" validate:"omitempty,oneof=submitted under_review accepted rejected"`
	Payed          bool               `json:"payed" bson:"payed"`
	SubmissionDate string             `json:"submission_date" bson:"submission_date" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt      string             `json:"created_at" bson:"created_at"`
	UpdatedAt      string             `json:"updated_at" bson:"updated_at"`
	Owner          string             `json:"owner" bson:"owner" validate:"required"`
	ConferenceId   primitive.ObjectID `json:"conference_id" bson:"conference_id"`
}

// KeywordList parses the comma-separated keywords field, dropping empty
// entries and surrounding whitespace.
func (sub Submission) KeywordList() []string {
	keywords := []string{}
	for _, raw := range strings.Split(sub.Keywords, ",") {
		keyword := strings.TrimSpace(raw)
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

// Validate checks field rules, the keyword limit, and that the submission
// does not arrive after the linked conference has started. The conference is
// passed in fully fetched; today supplies the effective submission date when
// the record carries none yet.
func (sub Submission) Validate(conf Conference, today string) error {
	if err := validateFields(sub); err != nil {
		return err
	}

	if len(sub.KeywordList()) > MaxKeywords {
		return errors.NewValidation(errors.KeywordLimit, "keywords",
			"at most 10 keywords are allowed")
	}

	if conf.StartDate == "" {
		return nil
	}
	confStart, err := ParseDate(conf.StartDate)
	if err != nil {
		return errors.NewValidation(errors.Format, "start_date", err.Error())
	}
	effectiveDate := sub.SubmissionDate
	if effectiveDate == "" {
		effectiveDate = today
	}
	submitted, err := ParseDate(effectiveDate)
	if err != nil {
		return errors.NewValidation(errors.Format, "submission_date", err.Error())
	}
	if submitted.After(confStart) {
		return errors.NewValidation(errors.LateSubmission, "submission_date",
			"submissions close once the conference has started")
	}

	return nil
}
