package routes

import (
	"github.com/gofiber/fiber/v2"

	"eduport/controllers"
	"eduport/gateway"
	"eduport/middleware"
	"eduport/services"
	"eduport/session"
)

func SetupRoutes(app *fiber.App, sessions *session.Manager, gw *gateway.Client, catalog *services.CatalogService, progress *services.ProgressService) {
	requireAuth := middleware.RequireAuth()

	// Auth routes
	authController := controllers.NewAuthController(sessions)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)
	app.Get("/api/auth/me", authController.Me)

	// Catalog and course routes
	coursesController := controllers.NewCoursesController(catalog, progress, gw)
	app.Get("/api/view/courses", coursesController.GetCourses)
	app.Get("/api/view/courses/:id", coursesController.GetCourseDetail)
	app.Get("/api/view/modules/:id", coursesController.GetModuleDetail)
	app.Post("/api/courses/:id/enroll", requireAuth, coursesController.Enroll)
	app.Post("/api/courses/:id/reviews", requireAuth, coursesController.SubmitReview)

	// Enrollment and progress routes
	progressController := controllers.NewProgressController(progress)
	app.Get("/api/view/my-courses", requireAuth, progressController.GetMyCourses)
	app.Get("/api/view/progress", requireAuth, progressController.GetProgress)
	app.Get("/api/view/courses/:id/progress", requireAuth, progressController.GetCourseProgress)
	app.Put("/api/courses/:id/progress", requireAuth, progressController.CompleteCourse)

	// Task and submission routes
	tasksController := controllers.NewTasksController(progress, gw)
	app.Get("/api/tasks/:id", tasksController.GetTask)
	app.Post("/api/tasks/:id/complete", requireAuth, tasksController.CompleteTask)
	app.Post("/api/tasks/:id/submission", requireAuth, tasksController.SubmitTask)
	app.Get("/api/tasks/:id/submission", requireAuth, tasksController.GetSubmission)

	// Profile routes
	userController := controllers.NewUserController(sessions, gw)
	app.Put("/api/profile", requireAuth, userController.UpdateProfile)
	app.Delete("/api/profile", requireAuth, userController.DeleteAccount)

	// UI state routes
	uiController := controllers.NewUIController()
	app.Get("/api/ui/state", uiController.GetState)
	app.Post("/api/ui/modal/:kind", uiController.OpenModal)
	app.Delete("/api/ui/modal", uiController.CloseModal)
	app.Post("/api/ui/content-view/:view", uiController.SwitchContentView)
}
