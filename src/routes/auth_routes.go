package routes

import (
	"Campus-Portal-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ login แยกตาม role
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/admin/login", controllers.LoginAdmin)
	auth.Post("/teacher/login", controllers.LoginTeacher)
	auth.Post("/student/login", controllers.LoginStudent)
}
