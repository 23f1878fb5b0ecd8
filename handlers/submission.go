package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"conference-webapp/database"
	"conference-webapp/errors"
	"conference-webapp/model"
)

// GetSubmissions lists the requesting user's own submissions, most recent
// first. The owner filter sits in the store query, not here.
func GetSubmissions(c *fiber.Ctx) error {
	submissions, dbErr := database.Current.GetSubmissionsForOwner(currentLogin(c))
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	submissionsJson, jsonErr := json.MarshalIndent(submissions, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(submissionsJson))
}

// fetchOwnSubmission resolves the submission behind the request and enforces
// ownership on the fetched record, so a scope bypass still ends in a denial.
func fetchOwnSubmission(c *fiber.Ctx) (model.Submission, error) {
	sub, dbErr := database.Current.GetSubmission(c.Params("submissionId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return model.Submission{}, errors.ErrNotFound
	}
	if dbErr != nil {
		return model.Submission{}, dbErr
	}
	if sub.Owner != currentLogin(c) {
		return model.Submission{}, errors.ErrPermissionDenied
	}
	return sub, nil
}

func GetSubmission(c *fiber.Ctx) error {
	sub, err := fetchOwnSubmission(c)
	if err != nil {
		return raiseSubmissionAccessError(c, err)
	}

	submissionJson, jsonErr := json.MarshalIndent(sub, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(submissionJson))
}

func raiseSubmissionAccessError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("submission %v not found", c.Params("submissionId")))
	}
	if errors.Is(err, errors.ErrPermissionDenied) {
		return errors.RaisePermissionsError(c, "you do not have access to this submission")
	}
	return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
}

func CreateSubmission(c *fiber.Ctx) error {
	login := currentLogin(c)

	conf, dbErr := database.Current.GetConference(c.FormValue("conference"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.FormValue("conference")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if !conf.IsOpenOn(today()) {
		return errors.RaiseBadRequestError(c, "this conference no longer accepts submissions")
	}

	newSub := model.Submission{
		Title:          strings.TrimSpace(c.FormValue("title")),
		Abstract:       strings.TrimSpace(c.FormValue("abstract")),
		Keywords:       c.FormValue("keywords"),
		Status:         model.StatusSubmitted,
		SubmissionDate: today(),
		CreatedAt:      timestamp(),
		UpdatedAt:      timestamp(),
		Owner:          login,
		ConferenceId:   conf.Id,
	}

	if validationErr := newSub.Validate(conf, today()); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for submission parameters: %v", validationErr))
	}

	count, countErr := database.Current.CountSubmissionsOnDay(login, newSub.SubmissionDate, "")
	if countErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", countErr))
	}
	if count >= model.MaxDailySubmissions {
		return errors.RaiseConflictError(c,
			fmt.Sprintf("%v: at most %v submissions per day are allowed",
				errors.ErrQuotaExceeded, model.MaxDailySubmissions))
	}

	paper, fileErr := c.FormFile("paper")
	if fileErr != nil {
		return errors.RaiseBadRequestError(c, "a paper file is required")
	}
	paperRef, saveErr := savePaper(paper)
	if saveErr != nil {
		if verr, ok := errors.IsValidation(saveErr); ok {
			return errors.RaiseBadRequestError(c, verr.Error())
		}
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot store paper file: %v", saveErr))
	}
	newSub.Paper = paperRef

	stored, writeErr := database.Current.InsertSubmission(newSub)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	storedJson, jsonErr := json.MarshalIndent(stored, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.Status(fiber.StatusCreated).SendString(string(storedJson))
}

// UpdateSubmission is the author-facing edit path. Identifier, owner, status,
// payment flag and submission date never change here; accepted and rejected
// submissions refuse the edit entirely.
func UpdateSubmission(c *fiber.Ctx) error {
	sub, err := fetchOwnSubmission(c)
	if err != nil {
		return raiseSubmissionAccessError(c, err)
	}

	if sub.Status.IsTerminal() {
		return errors.RaiseError(c, fiber.StatusConflict,
			errors.ErrTerminalState.Error(), "see your submission list at /submission")
	}

	conf, dbErr := database.Current.GetConference(sub.ConferenceId.Hex())
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, "the conference for this submission no longer exists")
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	updatedSub := sub
	updatedSub.Title = strings.TrimSpace(c.FormValue("title"))
	updatedSub.Abstract = strings.TrimSpace(c.FormValue("abstract"))
	updatedSub.Keywords = c.FormValue("keywords")
	updatedSub.UpdatedAt = timestamp()

	if validationErr := updatedSub.Validate(conf, today()); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for submission parameters: %v", validationErr))
	}

	count, countErr := database.Current.CountSubmissionsOnDay(sub.Owner, sub.SubmissionDate, sub.Id)
	if countErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", countErr))
	}
	if count >= model.MaxDailySubmissions {
		return errors.RaiseConflictError(c,
			fmt.Sprintf("%v: at most %v submissions per day are allowed",
				errors.ErrQuotaExceeded, model.MaxDailySubmissions))
	}

	if paper, fileErr := c.FormFile("paper"); fileErr == nil {
		paperRef, saveErr := savePaper(paper)
		if saveErr != nil {
			if verr, ok := errors.IsValidation(saveErr); ok {
				return errors.RaiseBadRequestError(c, verr.Error())
			}
			return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot store paper file: %v", saveErr))
		}
		updatedSub.Paper = paperRef
	}

	if updateErr := database.Current.UpdateSubmission(updatedSub); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	updatedSubJson, jsonErr := json.MarshalIndent(updatedSub, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(updatedSubJson))
}

// GetSubmissionPaper serves the stored paper file to its owner.
func GetSubmissionPaper(c *fiber.Ctx) error {
	sub, err := fetchOwnSubmission(c)
	if err != nil {
		return raiseSubmissionAccessError(c, err)
	}
	if sub.Paper == "" {
		return errors.RaiseNotFoundError(c, "no paper stored for this submission")
	}
	return c.SendFile(filepath.Join(PapersDir, sub.Paper))
}

// savePaper sniffs the uploaded bytes and persists them under a fresh
// reference name. Only PDF content is accepted, whatever the client claims.
func savePaper(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if !mimetype.Detect(content).Is("application/pdf") {
		return "", errors.NewValidation(errors.Format, "paper", "only PDF papers are accepted")
	}

	if err := os.MkdirAll(PapersDir, 0755); err != nil {
		return "", err
	}
	paperRef := uuid.New().String() + ".pdf"
	if err := os.WriteFile(filepath.Join(PapersDir, paperRef), content, 0644); err != nil {
		return "", err
	}
	return paperRef, nil
}
