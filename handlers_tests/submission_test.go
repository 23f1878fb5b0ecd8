package handlers

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conference-webapp/database"
	"conference-webapp/model"
)

func createSubmission(t *testing.T, app *fiber.App, token, confId, keywords string) (int, string) {
	res := doForm(t, app, "POST", "/submission/", token, map[string]string{
		"title":      "Generics in practice",
		"abstract":   "A look at type parameters in production code.",
		"keywords":   keywords,
		"conference": confId,
	}, pdfBytes)
	return res.StatusCode, readBody(t, res)
}

func TestCreateSubmission(t *testing.T) {
	app, store := setupApp(t)
	conf := seedConference(store, "2026-10-01", "2026-10-03")
	token := authToken(t, "alice", model.RoleAuthor)

	status, body := createSubmission(t, app, token, conf.Id.Hex(), "go, generics")
	require.Equal(t, 201, status, body)

	var stored model.Submission
	require.NoError(t, json.Unmarshal([]byte(body), &stored))

	assert.Regexp(t, regexp.MustCompile(`^SUB-[A-Z]{8}$`), stored.Id)
	assert.Equal(t, model.StatusSubmitted, stored.Status)
	assert.Equal(t, "alice", stored.Owner)
	assert.Equal(t, "2026-09-01", stored.SubmissionDate)
	assert.False(t, stored.Payed)
	assert.NotEmpty(t, stored.Paper)
}

func TestCreateSubmissionRejectsNonPDF(t *testing.T) {
	app, store := setupApp(t)
	conf := seedConference(store, "2026-10-01", "2026-10-03")

	res := doForm(t, app, "POST", "/submission/", authToken(t, "alice", model.RoleAuthor),
		map[string]string{
			"title":      "Generics in practice",
			"abstract":   "Abstract",
			"keywords":   "go",
			"conference": conf.Id.Hex(),
		}, []byte("plain text, not a pdf"))
	assert.Equal(t, 400, res.StatusCode)

	submissions, _ := store.GetSubmissionsForOwner("alice")
	assert.Empty(t, submissions)
}

func TestCreateSubmissionKeywordLimit(t *testing.T) {
	app, store := setupApp(t)
	conf := seedConference(store, "2026-10-01", "2026-10-03")

	status, body := createSubmission(t, app, authToken(t, "alice", model.RoleAuthor),
		conf.Id.Hex(), "ai, ml, nlp, db, os, net, sec, web, iot, ar, vr")
	assert.Equal(t, 400, status, body)

	submissions, _ := store.GetSubmissionsForOwner("alice")
	assert.Empty(t, submissions, "rejected submission must not reach the store")
}

func TestCreateSubmissionClosedConference(t *testing.T) {
	app, store := setupApp(t)
	conf := seedConference(store, "2026-08-01", "2026-08-03")

	status, _ := createSubmission(t, app, authToken(t, "alice", model.RoleAuthor), conf.Id.Hex(), "go")
	assert.Equal(t, 400, status)
}

func TestDailySubmissionQuota(t *testing.T) {
	app, store := setupApp(t)
	conf := seedConference(store, "2026-10-01", "2026-10-03")
	token := authToken(t, "alice", model.RoleAuthor)

	for i := 0; i < model.MaxDailySubmissions; i++ {
		status, body := createSubmission(t, app, token, conf.Id.Hex(), "go")
		require.Equal(t, 201, status, body)
	}

	status, body := createSubmission(t, app, token, conf.Id.Hex(), "go")
	assert.Equal(t, 409, status)
	assert.Contains(t, body, "quota")

	submissions, _ := store.GetSubmissionsForOwner("alice")
	assert.Len(t, submissions, model.MaxDailySubmissions)

	// another user is not affected by alice's quota
	status, _ = createSubmission(t, app, authToken(t, "bob", model.RoleAuthor), conf.Id.Hex(), "go")
	assert.Equal(t, 201, status)

	// and the next day the quota resets
	setClock(t, time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC))
	status, _ = createSubmission(t, app, token, conf.Id.Hex(), "go")
	assert.Equal(t, 201, status)
}

func seedSubmission(t *testing.T, app *fiber.App, store *database.MemoryStore, owner string) (model.Conference, model.Submission) {
	conf := seedConference(store, "2026-10-01", "2026-10-03")

	status, body := createSubmission(t, app, authToken(t, owner, model.RoleAuthor), conf.Id.Hex(), "go")
	require.Equal(t, 201, status, body)

	var sub model.Submission
	require.NoError(t, json.Unmarshal([]byte(body), &sub))
	return conf, sub
}

func TestSubmissionListIsOwnerScoped(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	res := doJSON(t, app, "GET", "/submission/", authToken(t, "bob", model.RoleAuthor), nil)
	assert.Equal(t, 200, res.StatusCode)
	assert.NotContains(t, readBody(t, res), sub.Id)

	res = doJSON(t, app, "GET", "/submission/", authToken(t, "alice", model.RoleAuthor), nil)
	assert.Equal(t, 200, res.StatusCode)
	assert.Contains(t, readBody(t, res), sub.Id)
}

func TestSubmissionDetailOwnershipCheck(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	res := doJSON(t, app, "GET", "/submission/"+sub.Id, authToken(t, "bob", model.RoleAuthor), nil)
	assert.Equal(t, 403, res.StatusCode)

	res = doJSON(t, app, "GET", "/submission/"+sub.Id, authToken(t, "alice", model.RoleAuthor), nil)
	assert.Equal(t, 200, res.StatusCode)
}

func TestUpdateSubmission(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	res := doForm(t, app, "PUT", "/submission/"+sub.Id, authToken(t, "alice", model.RoleAuthor),
		map[string]string{
			"title":    "Generics revisited",
			"abstract": "Updated abstract.",
			"keywords": "go, generics, reflection",
		}, nil)
	assert.Equal(t, 200, res.StatusCode)

	stored, err := store.GetSubmission(sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "Generics revisited", stored.Title)
	assert.Equal(t, sub.Id, stored.Id)
	assert.Equal(t, sub.SubmissionDate, stored.SubmissionDate)
	assert.Equal(t, model.StatusSubmitted, stored.Status)
}

func TestUpdateSubmissionTerminalState(t *testing.T) {
	app, store := setupApp(t)

	for _, terminal := range []model.SubmissionStatus{model.StatusAccepted, model.StatusRejected} {
		_, sub := seedSubmission(t, app, store, "alice")

		sub.Status = terminal
		require.NoError(t, store.UpdateSubmission(sub))

		res := doForm(t, app, "PUT", "/submission/"+sub.Id, authToken(t, "alice", model.RoleAuthor),
			map[string]string{
				"title":    "Sneaky edit",
				"abstract": "Should never land.",
				"keywords": "go",
			}, nil)
		assert.Equal(t, 409, res.StatusCode)
		assert.Contains(t, readBody(t, res), "cannot be modified")

		stored, _ := store.GetSubmission(sub.Id)
		assert.Equal(t, "Generics in practice", stored.Title, "terminal submission must stay unchanged")
		assert.Equal(t, terminal, stored.Status)
	}
}

func TestUpdateSubmissionOwnershipCheck(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	res := doForm(t, app, "PUT", "/submission/"+sub.Id, authToken(t, "bob", model.RoleAuthor),
		map[string]string{
			"title":    "Hijacked",
			"abstract": "Should never land.",
			"keywords": "go",
		}, nil)
	assert.Equal(t, 403, res.StatusCode)

	stored, _ := store.GetSubmission(sub.Id)
	assert.Equal(t, "Generics in practice", stored.Title)
}

func TestCommitteeReviewActions(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	committee := authToken(t, "chair", model.RoleCommittee)
	author := authToken(t, "alice", model.RoleAuthor)

	res := doJSON(t, app, "PATCH", "/review/"+sub.Id+"/accept", author, nil)
	assert.Equal(t, 403, res.StatusCode)

	res = doJSON(t, app, "PATCH", "/review/"+sub.Id+"/review", committee, nil)
	assert.Equal(t, 200, res.StatusCode)
	stored, _ := store.GetSubmission(sub.Id)
	assert.Equal(t, model.StatusUnderReview, stored.Status)

	res = doJSON(t, app, "PATCH", "/review/"+sub.Id+"/accept", committee, nil)
	assert.Equal(t, 200, res.StatusCode)
	stored, _ = store.GetSubmission(sub.Id)
	assert.Equal(t, model.StatusAccepted, stored.Status)

	res = doJSON(t, app, "PATCH", "/review/"+sub.Id+"/payed", committee, nil)
	assert.Equal(t, 200, res.StatusCode)
	stored, _ = store.GetSubmission(sub.Id)
	assert.True(t, stored.Payed)
	assert.Equal(t, model.StatusAccepted, stored.Status, "marking payed must not touch the status")
}

func TestReviewListRequiresCommittee(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	res := doJSON(t, app, "GET", "/review/", authToken(t, "bob", model.RoleAuthor), nil)
	assert.Equal(t, 403, res.StatusCode)

	res = doJSON(t, app, "GET", "/review/", authToken(t, "chair", model.RoleCommittee), nil)
	assert.Equal(t, 200, res.StatusCode)
	assert.Contains(t, readBody(t, res), sub.Id)
}

func TestGetSubmissionPaper(t *testing.T) {
	app, store := setupApp(t)
	_, sub := seedSubmission(t, app, store, "alice")

	res := doJSON(t, app, "GET", "/submission/"+sub.Id+"/paper", authToken(t, "bob", model.RoleAuthor), nil)
	assert.Equal(t, 403, res.StatusCode)

	res = doJSON(t, app, "GET", "/submission/"+sub.Id+"/paper", authToken(t, "alice", model.RoleAuthor), nil)
	assert.Equal(t, 200, res.StatusCode)
	assert.Contains(t, readBody(t, res), "%PDF")
}
