package routes

import (
	"Campus-Portal-Backend/src/controllers"
	"Campus-Portal-Backend/src/middleware"
	"Campus-Portal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes กำหนดเส้นทางสำหรับ Student API
func studentRoutes(app *fiber.App) {
	student := app.Group("/student")
	student.Use(middleware.AuthJWT)
	student.Use(middleware.RequireRoles(models.RoleStudent))

	student.Get("/profile", controllers.GetOwnProfile)
	student.Put("/password", controllers.ChangeOwnPassword)
	student.Get("/courses", controllers.GetOwnCourses)
	student.Post("/courses/register", controllers.RegisterCourses)
	student.Get("/marks", controllers.GetOwnMarks)
	student.Get("/attendance/:courseId", controllers.GetOwnAttendanceRate)
	student.Get("/gpa", controllers.GetOwnGPATrajectory)
	student.Get("/evaluations", controllers.GetOwnEvaluations)
}
