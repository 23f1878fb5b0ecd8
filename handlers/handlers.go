package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"conference-webapp/model"
)

// Now supplies the current time to the quota, late-submission and
// open-conference checks. Tests swap it for a fixed clock.
var Now = time.Now

// PapersDir is where uploaded paper files land, set from config at startup.
var PapersDir = "./papers"

func today() string {
	return Now().Format(model.DateLayout)
}

func timestamp() string {
	return Now().Format(time.RFC3339)
}

func currentClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("identity").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func currentLogin(c *fiber.Ctx) string {
	login, _ := currentClaims(c)["username"].(string)
	return login
}

func isCommitteeRole(c *fiber.Ctx) bool {
	role, _ := currentClaims(c)["role"].(string)
	return model.Role(role) == model.RoleCommittee
}
