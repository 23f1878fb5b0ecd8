package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"conference-webapp/database"
	"conference-webapp/errors"
	"conference-webapp/model"
)

// Committee-side submission actions. These privileged transitions live
// outside the author update path, so the terminal-state guard does not apply
// here: accepting or rejecting is exactly what puts a submission into a
// terminal state.

func GetAllSubmissions(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	submissions, dbErr := database.Current.GetAllSubmissions()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	submissionsJson, jsonErr := json.MarshalIndent(submissions, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(submissionsJson))
}

func StartSubmissionReview(c *fiber.Ctx) error {
	return transitionSubmission(c, func(sub *model.Submission) {
		sub.Status = model.StatusUnderReview
	})
}

func AcceptSubmission(c *fiber.Ctx) error {
	return transitionSubmission(c, func(sub *model.Submission) {
		sub.Status = model.StatusAccepted
	})
}

func RejectSubmission(c *fiber.Ctx) error {
	return transitionSubmission(c, func(sub *model.Submission) {
		sub.Status = model.StatusRejected
	})
}

func MarkSubmissionPayed(c *fiber.Ctx) error {
	return transitionSubmission(c, func(sub *model.Submission) {
		sub.Payed = true
	})
}

func transitionSubmission(c *fiber.Ctx, apply func(sub *model.Submission)) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	sub, dbErr := database.Current.GetSubmission(c.Params("submissionId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("submission %v not found", c.Params("submissionId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	apply(&sub)
	sub.UpdatedAt = timestamp()

	if updateErr := database.Current.UpdateSubmission(sub); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	subJson, jsonErr := json.MarshalIndent(sub, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(subJson))
}
