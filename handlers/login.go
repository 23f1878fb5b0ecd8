package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"conference-webapp/config"
	"conference-webapp/database"
	"conference-webapp/errors"
	"conference-webapp/model"
)

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func Login(c *fiber.Ctx) error {
	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, geterr := database.Current.GetUser(creds.Login)
	if geterr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", geterr))
	}

	if user.Login == "" || !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return errors.RaiseError(c, fiber.StatusUnauthorized, "invalid login or password", "")
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()
	claims["role"] = string(user.Role)

	sign, enverr := config.GetSecret("SIGN")
	if enverr != nil {
		log.Print(enverr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}

// Register creates an author account. Committee accounts are granted through
// the committee-gated role update endpoint, never self-assigned here.
func Register(c *fiber.Ctx) error {
	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}
	if len(creds.Login) < 2 || len(creds.Password) < 8 {
		return errors.RaiseBadRequestError(c, "login must be at least 2 and password at least 8 characters long")
	}

	existing, geterr := database.Current.GetUser(creds.Login)
	if geterr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", geterr))
	}
	if existing.Login != "" {
		return errors.RaiseConflictError(c, fmt.Sprintf("login %v is already taken", creds.Login))
	}

	hash, hasherr := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if hasherr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot hash password: %v", hasherr))
	}

	user := model.UserData{
		Id:             primitive.NewObjectID(),
		Login:          creds.Login,
		HashedPassword: string(hash),
		Role:           model.RoleAuthor,
	}
	if writeErr := database.Current.InsertUser(user); writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "user registered", "data": user.Login})
}

// UpdateUserRole lets a committee member grant or revoke the committee role.
func UpdateUserRole(c *fiber.Ctx) error {
	if !isCommitteeRole(c) {
		return errors.RaisePermissionsError(c, "only committee members can perform this operation")
	}

	payload := new(struct {
		Role string `json:"role"`
	})
	if err := c.BodyParser(payload); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse role: %v", err))
	}
	role, parseErr := model.ParseRole(payload.Role)
	if parseErr != nil {
		return errors.RaiseBadRequestError(c, parseErr.Error())
	}

	user, geterr := database.Current.GetUser(c.Params("login"))
	if geterr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", geterr))
	}
	if user.Login == "" {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("no user with login %v", c.Params("login")))
	}

	user.Role = role
	if writeErr := database.Current.UpdateUser(user); writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "role updated", "data": string(role)})
}
