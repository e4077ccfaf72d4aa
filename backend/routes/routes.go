package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// System routes
	systemController := controllers.NewSystemController()
	app.Get("/health", systemController.Health)
	app.Get("/time", systemController.Time)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)
	app.Post("/api/logout", authController.Logout)

	// Middleware
	requireSession := middleware.RequireSession(db)

	// Account routes
	app.Get("/api/account", requireSession, authController.GetAccount)
	app.Put("/api/account", requireSession, authController.UpdateAccount)
	app.Delete("/api/account", requireSession, authController.DeleteAccount)

	// Onboarding routes
	onboardingController := controllers.NewOnboardingController(db, cfg)
	app.Post("/api/onboarding", requireSession, onboardingController.SubmitOnboarding)
	app.Get("/api/onboarding", requireSession, onboardingController.GetOnboarding)

	// Workout routes
	workoutController := controllers.NewWorkoutController(db, cfg)
	workout := app.Group("/api/workout", requireSession)
	workout.Post("/start", workoutController.StartWorkout)
	workout.Post("/:id/exercise", workoutController.LogExercise)
	workout.Post("/:id/complete", workoutController.CompleteWorkout)
	workout.Get("/history", workoutController.GetWorkoutHistory)

	// Water and stretch routes
	app.Post("/api/water", requireSession, workoutController.LogWater)
	app.Get("/api/water/today", requireSession, workoutController.GetWaterToday)
	app.Get("/api/water/week", requireSession, workoutController.GetWaterWeek)
	app.Post("/api/stretch/remind", requireSession, workoutController.CreateStretchReminder)
	app.Post("/api/stretch/:id/complete", requireSession, workoutController.CompleteStretch)

	// Study routes
	studyController := controllers.NewStudyController(db, cfg)
	study := app.Group("/api/study", requireSession)
	study.Post("/start", studyController.StartStudy)
	study.Post("/:id/distraction", studyController.LogDistraction)
	study.Post("/:id/pomodoro", studyController.LogPomodoro)
	study.Post("/:id/complete", studyController.CompleteStudy)
	study.Get("/history", studyController.GetStudyHistory)
	study.Post("/task", studyController.CreateTask)
	study.Get("/tasks", studyController.GetTasks)
	study.Put("/task/:id", studyController.UpdateTask)
	study.Delete("/task/:id", studyController.DeleteTask)
	study.Get("/streak", studyController.GetStreak)

	// Focus routes
	focusController := controllers.NewFocusController(db, cfg)
	app.Post("/api/focus/session", requireSession, focusController.CreateFocusSession)
	app.Get("/api/focus/history", requireSession, focusController.GetFocusHistory)
	app.Post("/api/gratitude", requireSession, focusController.CreateGratitudeEntry)
	app.Get("/api/gratitude/recent", requireSession, focusController.GetRecentGratitude)

	// Stress routes
	stressController := controllers.NewStressController(db, cfg)
	app.Post("/api/mood", requireSession, stressController.CreateMoodCheckin)
	app.Get("/api/mood/recent", requireSession, stressController.GetRecentMoods)
	app.Get("/api/mood/average", requireSession, stressController.GetMoodAverage)
	app.Post("/api/journal", requireSession, stressController.CreateJournalEntry)
	app.Get("/api/journal/recent", requireSession, stressController.GetRecentJournalEntries)
	app.Get("/api/journal/:id", requireSession, stressController.GetJournalEntry)
	app.Delete("/api/journal/:id", requireSession, stressController.DeleteJournalEntry)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/api/stats/overview", requireSession, dashboardController.GetStatsOverview)
}
