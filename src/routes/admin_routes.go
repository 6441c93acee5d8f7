package routes

import (
	"Campus-Portal-Backend/src/controllers"
	"Campus-Portal-Backend/src/middleware"
	"Campus-Portal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API
func adminRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Use(middleware.AuthJWT)
	admin.Use(middleware.RequireRoles(models.RoleAdmin))

	admin.Post("/admins", controllers.CreateAdmin)
	admin.Get("/dashboard", controllers.GetDashboard)

	admin.Post("/students", controllers.CreateStudent)
	admin.Get("/students", controllers.GetStudents)
	admin.Get("/students/:id", controllers.GetStudentByID)
	admin.Put("/students/:id", controllers.UpdateStudent)
	admin.Delete("/students/:id", controllers.DeleteStudent)

	admin.Post("/teachers", controllers.CreateTeacher)
	admin.Get("/teachers", controllers.GetTeachers)
	admin.Get("/teachers/:id", controllers.GetTeacherByID)
	admin.Put("/teachers/:id", controllers.UpdateTeacher)
	admin.Delete("/teachers/:id", controllers.DeleteTeacher)

	admin.Post("/courses", controllers.CreateCourse)
	admin.Get("/courses", controllers.GetCourses)
	admin.Get("/courses/:id", controllers.GetCourseByID)
	admin.Put("/courses/:id/teacher", controllers.AssignTeacher)
	admin.Delete("/courses/:id", controllers.DeleteCourse)
}
