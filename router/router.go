package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"conference-webapp/handlers"
	"conference-webapp/middleware"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	//Login and registration
	login := api.Group("/login")
	login.Post("/", handlers.Login)
	api.Post("/register", handlers.Register)

	//User administration
	user := api.Group("/user", middleware.Authorize())
	user.Patch("/:login/role", handlers.UpdateUserRole)

	//Conference
	conference := api.Group("/conference", middleware.Authorize())
	conference.Get("/", handlers.GetConferences)
	conference.Get("/open", handlers.GetOpenConferences)
	conference.Get("/:confId", handlers.GetConference)
	conference.Post("/", handlers.CreateNewConference)
	conference.Put("/:confId", handlers.UpdateConference)
	conference.Delete("/:confId", handlers.DeleteConference)

	//Organizing committee
	committee := conference.Group("/:confId/committee")
	committee.Get("/", handlers.GetCommitteeMembers)
	committee.Post("/", handlers.AddCommitteeMember)
	committee.Delete("/:memberId", handlers.RemoveCommitteeMember)

	//Session
	session := conference.Group("/:confId/session")
	session.Get("/", handlers.GetSessions)
	session.Get("/:sessionId", handlers.GetSession)
	session.Post("/", handlers.CreateSession)
	session.Put("/:sessionId", handlers.UpdateSession)
	session.Delete("/:sessionId", handlers.DeleteSession)

	//Submission (author-facing, owner-scoped)
	submission := api.Group("/submission", middleware.Authorize())
	submission.Get("/", handlers.GetSubmissions)
	submission.Get("/:submissionId", handlers.GetSubmission)
	submission.Get("/:submissionId/paper", handlers.GetSubmissionPaper)
	submission.Post("/", handlers.CreateSubmission)
	submission.Put("/:submissionId", handlers.UpdateSubmission)

	//Review (committee-facing submission actions)
	review := api.Group("/review", middleware.Authorize())
	review.Get("/", handlers.GetAllSubmissions)
	review.Patch("/:submissionId/review", handlers.StartSubmissionReview)
	review.Patch("/:submissionId/accept", handlers.AcceptSubmission)
	review.Patch("/:submissionId/reject", handlers.RejectSubmission)
	review.Patch("/:submissionId/payed", handlers.MarkSubmissionPayed)
}
