package routes

import (
	"Campus-Portal-Backend/src/controllers"
	"Campus-Portal-Backend/src/middleware"
	"Campus-Portal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

// teacherRoutes กำหนดเส้นทางสำหรับ Teacher API
func teacherRoutes(app *fiber.App) {
	teacher := app.Group("/teacher")
	teacher.Use(middleware.AuthJWT)
	teacher.Use(middleware.RequireRoles(models.RoleTeacher))

	teacher.Get("/profile", controllers.GetOwnTeacherProfile)
	teacher.Get("/courses", controllers.GetTaughtCourses)
	teacher.Get("/courses/:courseId/lectures", controllers.GetLectures)
	teacher.Get("/courses/:courseId/marks", controllers.GetCourseMarks)
	teacher.Post("/lectures", controllers.CreateLecture)
	teacher.Get("/lectures/:lectureId/attendance", controllers.GetLectureAttendance)
	teacher.Post("/attendance", controllers.RecordAttendance)
	teacher.Post("/marks", controllers.EnterMarks)
	teacher.Post("/evaluations", controllers.CreateEvaluation)
	teacher.Get("/evaluations", controllers.GetCourseEvaluations)
	teacher.Put("/evaluations/:id", controllers.UpdateEvaluation)
}
