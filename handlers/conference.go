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

func GetConferences(c *fiber.Ctx) error {
	conferences, dbErr := database.Current.GetConferences()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	conferencesJson, jsonErr := json.MarshalIndent(conferences, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(conferencesJson))
}

// GetOpenConferences backs the submission form's conference choice: only
// conferences whose end date has not passed are offered.
func GetOpenConferences(c *fiber.Ctx) error {
	conferences, dbErr := database.Current.GetOpenConferences(today())
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	conferencesJson, jsonErr := json.MarshalIndent(conferences, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(conferencesJson))
}

func GetConference(c *fiber.Ctx) error {
	conf, dbErr := database.Current.GetConference(c.Params("confId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	conferenceJson, jsonErr := json.MarshalIndent(conf, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(conferenceJson))
}

func CreateNewConference(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	newConf := new(model.Conference)
	if jsonErr := c.BodyParser(newConf); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable conference parameters: %v", jsonErr))
	}
	newConf.Id = primitive.NewObjectID()
	newConf.Name = strings.TrimSpace(newConf.Name)
	newConf.CreatedAt = timestamp()
	newConf.UpdatedAt = newConf.CreatedAt

	if validationErr := newConf.Validate(); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for conference parameters: %v", validationErr))
	}

	if writeErr := database.Current.InsertConference(*newConf); writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	newConfJson, jsonErr := json.MarshalIndent(newConf, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newConfJson))
}

func UpdateConference(c *fiber.Ctx) error {
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

	updatedConf := new(model.Conference)
	if jsonErr := c.BodyParser(updatedConf); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable conference parameters: %v", jsonErr))
	}
	updatedConf.Id = conf.Id
	updatedConf.Name = strings.TrimSpace(updatedConf.Name)
	updatedConf.CreatedAt = conf.CreatedAt
	updatedConf.UpdatedAt = timestamp()

	if validationErr := updatedConf.Validate(); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for conference parameters: %v", validationErr))
	}

	if updateErr := database.Current.UpdateConference(*updatedConf); updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	updatedConfJson, jsonErr := json.MarshalIndent(updatedConf, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(updatedConfJson))
}

// DeleteConference removes the conference and, through the store, all of its
// submissions, sessions and committee memberships.
func DeleteConference(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	deleteErr := database.Current.DeleteConference(c.Params("confId"))
	if errors.Is(deleteErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("conference with id %v was deleted", c.Params("confId"))})
}
