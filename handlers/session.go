package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/database"
	"conference-webapp/errors"
	"conference-webapp/model"
)

// Session REST endpoints, nested under a conference. Reads are open to any
// authenticated user; writes are committee work, and every write runs the
// session validators against the fetched parent conference.

func GetSessions(c *fiber.Ctx) error {
	sessions, dbErr := database.Current.GetSessions(c.Params("confId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	sessionsJson, jsonErr := json.MarshalIndent(sessions, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(sessionsJson))
}

func GetSession(c *fiber.Ctx) error {
	sess, dbErr := database.Current.GetSession(c.Params("confId"), c.Params("sessionId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c,
			fmt.Sprintf("no session with id %v for conference id %v", c.Params("sessionId"), c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	sessionJson, jsonErr := json.MarshalIndent(sess, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(sessionJson))
}

func CreateSession(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	conf, dbErr := database.Current.GetConference(c.Params("confId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	newSess := new(model.Session)
	if jsonErr := c.BodyParser(newSess); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable session parameters: %v", jsonErr))
	}
	newSess.Id = primitive.NewObjectID()
	newSess.Title = strings.TrimSpace(newSess.Title)
	newSess.ConferenceId = conf.Id
	newSess.CreatedAt = timestamp()
	newSess.UpdatedAt = newSess.CreatedAt

	if validationErr := newSess.Validate(conf); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for session parameters: %v", validationErr))
	}

	if writeErr := database.Current.InsertSession(*newSess); writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	newSessJson, jsonErr := json.MarshalIndent(newSess, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.Status(fiber.StatusCreated).SendString(string(newSessJson))
}

func UpdateSession(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	conf, dbErr := database.Current.GetConference(c.Params("confId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	sess, dbErr := database.Current.GetSession(c.Params("confId"), c.Params("sessionId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c,
			fmt.Sprintf("no session with id %v for conference id %v", c.Params("sessionId"), c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	updatedSess := new(model.Session)
	if jsonErr := c.BodyParser(updatedSess); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable session parameters: %v", jsonErr))
	}
	updatedSess.Id = sess.Id
	updatedSess.Title = strings.TrimSpace(updatedSess.Title)
	updatedSess.ConferenceId = sess.ConferenceId
	updatedSess.CreatedAt = sess.CreatedAt
	updatedSess.UpdatedAt = timestamp()

	if validationErr := updatedSess.Validate(conf); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for session parameters: %v", validationErr))
	}

	if updateErr := database.Current.UpdateSession(*updatedSess); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	updatedSessJson, jsonErr := json.MarshalIndent(updatedSess, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(updatedSessJson))
}

func DeleteSession(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	deleteErr := database.Current.DeleteSession(c.Params("sessionId"))
	if errors.Is(deleteErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c,
			fmt.Sprintf("no session with id %v for conference id %v", c.Params("sessionId"), c.Params("confId")))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("session with id %v was deleted", c.Params("sessionId"))})
}
