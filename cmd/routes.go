package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := alice.New(app.requireAuth)

	mux := pat.New()

	// Recommendations
	mux.Get("/api/recommend-seekers", http.HandlerFunc(app.recommendHandler.RecommendSeekers))
	mux.Get("/api/recommendations/:seekerId", http.HandlerFunc(app.recommendHandler.GetRecommendations))

	// Auth
	mux.Post("/api/signup", http.HandlerFunc(app.userHandler.SignUp))
	mux.Post("/api/verify", http.HandlerFunc(app.userHandler.VerifyPhone))
	mux.Post("/api/signin", http.HandlerFunc(app.userHandler.SignIn))
	mux.Post("/api/refresh", http.HandlerFunc(app.userHandler.Refresh))
	mux.Post("/api/users/:id/fcm-token", authMiddleware.ThenFunc(app.userHandler.SaveFCMToken))

	// Tasks
	mux.Post("/api/tasks", authMiddleware.ThenFunc(app.taskHandler.CreateTask))
	mux.Get("/api/tasks/user/:user_id", authMiddleware.ThenFunc(app.taskHandler.GetTasksByUserID))
	mux.Get("/api/tasks/:id", http.HandlerFunc(app.taskHandler.GetTaskByID))
	mux.Put("/api/tasks/:id", authMiddleware.ThenFunc(app.taskHandler.UpdateTask))
	mux.Del("/api/tasks/:id", authMiddleware.ThenFunc(app.taskHandler.DeleteTask))

	// Seekers
	mux.Post("/api/seekers", authMiddleware.ThenFunc(app.seekerHandler.CreateSeeker))
	mux.Get("/api/seekers/:id", http.HandlerFunc(app.seekerHandler.GetSeekerByID))
	mux.Put("/api/seekers/:id", authMiddleware.ThenFunc(app.seekerHandler.UpdateSeeker))
	mux.Put("/api/seekers/:id/active", authMiddleware.ThenFunc(app.seekerHandler.SetSeekerActive))
	mux.Post("/api/seekers/:id/photo", authMiddleware.ThenFunc(app.seekerHandler.UploadPhoto))

	// Categories
	mux.Post("/api/categories", authMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/api/categories", http.HandlerFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/api/categories/:id", http.HandlerFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/api/categories/:id", authMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/api/categories/:id", authMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Subcategories
	mux.Post("/api/subcategories", authMiddleware.ThenFunc(app.subcategoryHandler.CreateSubcategory))
	mux.Get("/api/subcategories", http.HandlerFunc(app.subcategoryHandler.GetAllSubcategories))
	mux.Get("/api/subcategories/category/:category_id", http.HandlerFunc(app.subcategoryHandler.GetSubcategoriesByCategory))
	mux.Del("/api/subcategories/:id", authMiddleware.ThenFunc(app.subcategoryHandler.DeleteSubcategory))

	// Hire requests
	mux.Post("/api/hires", authMiddleware.ThenFunc(app.hireHandler.CreateHireRequest))
	mux.Get("/api/hires/user/:user_id", authMiddleware.ThenFunc(app.hireHandler.ListHireRequestsByUser))
	mux.Get("/api/hires/:id", authMiddleware.ThenFunc(app.hireHandler.GetHireRequestByID))
	mux.Put("/api/hires/:id/accept", authMiddleware.ThenFunc(app.hireHandler.AcceptHireRequest))
	mux.Put("/api/hires/:id/decline", authMiddleware.ThenFunc(app.hireHandler.DeclineHireRequest))

	// Payments
	mux.Post("/api/payments/checkout", authMiddleware.ThenFunc(app.paymentHandler.StartPayment))
	mux.Post("/api/payments/capture", authMiddleware.ThenFunc(app.paymentHandler.CapturePayment))

	// Realtime notifications
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
