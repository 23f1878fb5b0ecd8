package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/database"
	"conference-webapp/errors"
	"conference-webapp/model"
)

func GetCommitteeMembers(c *fiber.Ctx) error {
	members, dbErr := database.Current.GetCommitteeMembers(c.Params("confId"))
	if errors.Is(dbErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("conference %v not found", c.Params("confId")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	membersJson, jsonErr := json.MarshalIndent(members, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(membersJson))
}

func AddCommitteeMember(c *fiber.Ctx) error {
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

	newMember := new(model.OrganizingCommittee)
	if jsonErr := c.BodyParser(newMember); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable committee member parameters: %v", jsonErr))
	}
	newMember.Id = primitive.NewObjectID()
	newMember.ConferenceId = conf.Id
	newMember.CreatedAt = timestamp()
	newMember.UpdatedAt = newMember.CreatedAt
	if newMember.DateJoined == "" {
		newMember.DateJoined = today()
	}

	if validationErr := newMember.Validate(); validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for committee member parameters: %v", validationErr))
	}

	user, userErr := database.Current.GetUser(newMember.UserLogin)
	if userErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", userErr))
	}
	if user.Login == "" {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("no user with login %v", newMember.UserLogin))
	}

	if writeErr := database.Current.InsertCommitteeMember(*newMember); writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	newMemberJson, jsonErr := json.MarshalIndent(newMember, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.Status(fiber.StatusCreated).SendString(string(newMemberJson))
}

func RemoveCommitteeMember(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	deleteErr := database.Current.DeleteCommitteeMember(c.Params("memberId"))
	if errors.Is(deleteErr, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("committee member %v not found", c.Params("memberId")))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("committee member with id %v was removed", c.Params("memberId"))})
}
