package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/database"
	"conference-webapp/handlers"
	"conference-webapp/model"
	"conference-webapp/router"
)

const testSign = "test-signing-key"

// fixedNow is the clock every test runs under unless it moves it.
var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< >>\n%%EOF\n")

func setupApp(t *testing.T) (*fiber.App, *database.MemoryStore) {
	t.Setenv("SIGN", testSign)
	handlers.PapersDir = t.TempDir()

	prevNow := handlers.Now
	handlers.Now = func() time.Time { return fixedNow }
	t.Cleanup(func() { handlers.Now = prevNow })

	store := database.NewMemoryStore()
	database.Current = store

	app := fiber.New()
	router.SetupRoutes(app)
	return app, store
}

func setClock(t *testing.T, now time.Time) {
	prev := handlers.Now
	handlers.Now = func() time.Time { return now }
	t.Cleanup(func() { handlers.Now = prev })
}

func authToken(t *testing.T, login string, role model.Role) string {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = login
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	claims["role"] = string(role)

	signed, err := token.SignedString([]byte(testSign))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, route, token string, body io.Reader, contentType string) *http.Response {
	req, err := http.NewRequest(method, route, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func doJSON(t *testing.T, app *fiber.App, method, route, token string, payload interface{}) *http.Response {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}
	return doRequest(t, app, method, route, token, body, "application/json")
}

func doForm(t *testing.T, app *fiber.App, method, route, token string, fields map[string]string, paper []byte) *http.Response {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if paper != nil {
		fw, err := writer.CreateFormFile("paper", "paper.pdf")
		require.NoError(t, err)
		_, err = fw.Write(paper)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return doRequest(t, app, method, route, token, &buf, writer.FormDataContentType())
}

func readBody(t *testing.T, res *http.Response) string {
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(raw)
}

func seedConference(store *database.MemoryStore, start, end string) model.Conference {
	conf := model.Conference{
		Id:        primitive.NewObjectID(),
		Name:      "GoCon Europe",
		Theme:     model.ThemeComputerScience,
		Location:  "Berlin",
		StartDate: start,
		EndDate:   end,
	}
	store.InsertConference(conf)
	return conf
}
