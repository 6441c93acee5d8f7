package controllers

import (
	"net/http"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateStudent godoc
// @Summary Create a student
// @Description Register a new student (admin only)
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.Student true "Student to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/students [post]
func CreateStudent(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		RollNo     string `json:"rollNo"`
		Password   string `json:"password"`
		Semester   int    `json:"semester"`
		Department string `json:"department"`
		Batch      string `json:"batch"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	student := models.Student{
		Name:       req.Name,
		Email:      req.Email,
		RollNo:     req.RollNo,
		Password:   req.Password,
		Semester:   req.Semester,
		Department: req.Department,
		Batch:      req.Batch,
	}

	if err := services.CreateStudent(&student); err != nil {
		return utils.HandleAppError(c, err)
	}

	student.Password = ""
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

// GetStudents godoc
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Search by name or roll number"
// @Param department query string false "Filter by department"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	result, err := services.GetStudents(params, c.Query("department"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(result)
}

// GetStudentByID godoc
// @Summary Get one student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/students/{id} [get]
func GetStudentByID(c *fiber.Ctx) error {
	student, err := services.GetStudentByID(c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body models.StudentUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /admin/students/{id} [put]
func UpdateStudent(c *fiber.Ctx) error {
	// parsed into a request struct, not the model: the model hides password
	// from JSON so a password sent here would be dropped
	var req models.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	update := req.ToStudent()
	if err := services.UpdateStudent(c.Params("id"), &update); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/students/{id} [delete]
func DeleteStudent(c *fiber.Ctx) error {
	if err := services.DeleteStudent(c.Params("id")); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// GetOwnProfile godoc
// @Summary Get the authenticated student's profile
// @Tags student-portal
// @Produce json
// @Success 200 {object} models.Student
// @Router /student/profile [get]
func GetOwnProfile(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	return c.JSON(principal.Student)
}

// ChangeOwnPassword godoc
// @Summary Change the authenticated student's password
// @Tags student-portal
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /student/password [put]
func ChangeOwnPassword(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	if err := services.ChangeStudentPassword(principal.ID, req.Password); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// RegisterCourses godoc
// @Summary Register the authenticated student in courses
// @Description All requested course ids must exist; otherwise nothing is registered
// @Tags student-portal
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /student/courses/register [post]
func RegisterCourses(c *fiber.Ctx) error {
	var req struct {
		CourseIDs []string `json:"courseIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	if err := services.RegisterCourses(principal.ID, req.CourseIDs); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Courses registered successfully"})
}

// GetOwnCourses godoc
// @Summary List the authenticated student's enrolled courses
// @Tags student-portal
// @Produce json
// @Success 200 {array} models.Course
// @Router /student/courses [get]
func GetOwnCourses(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	courses, err := services.GetCoursesByIDs(enrolledCourseIDs(principal.Student))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(courses)
}

// GetOwnMarks godoc
// @Summary List the authenticated student's marks
// @Tags student-portal
// @Produce json
// @Success 200 {array} models.MarkEntry
// @Router /student/marks [get]
func GetOwnMarks(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	marks, err := services.GetMarksByStudent(principal.ID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(marks)
}

// GetOwnAttendanceRate godoc
// @Summary Attendance rate for one of the student's courses
// @Tags student-portal
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.AttendanceRate
// @Router /student/attendance/{courseId} [get]
func GetOwnAttendanceRate(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	rate, err := services.GetAttendanceRate(principal.ID, c.Params("courseId"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(rate)
}

// GetOwnGPATrajectory godoc
// @Summary GPA per semester, sorted ascending
// @Tags student-portal
// @Produce json
// @Success 200 {array} models.SemesterResult
// @Router /student/gpa [get]
func GetOwnGPATrajectory(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	trajectory, err := services.GetGPATrajectory(principal.ID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(trajectory)
}

// GetOwnEvaluations godoc
// @Summary List the authenticated student's evaluations
// @Tags student-portal
// @Produce json
// @Param kind query string false "Sessional, Midterm or Final"
// @Success 200 {array} models.Evaluation
// @Router /student/evaluations [get]
func GetOwnEvaluations(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	evaluations, err := services.GetEvaluationsByStudent(principal.ID, c.Query("kind"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(evaluations)
}
