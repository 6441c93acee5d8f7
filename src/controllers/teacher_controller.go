package controllers

import (
	"net/http"
	"time"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTeacher godoc
// @Summary Create a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacher body models.Teacher true "Teacher to create"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/teachers [post]
func CreateTeacher(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Education  string `json:"education"`
		Department string `json:"department"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	teacher := models.Teacher{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Education:  req.Education,
		Department: req.Department,
	}

	if err := services.CreateTeacher(&teacher); err != nil {
		return utils.HandleAppError(c, err)
	}

	teacher.Password = ""
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Teacher created successfully",
		"teacher": teacher,
	})
}

// GetTeachers godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/teachers [get]
func GetTeachers(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	result, err := services.GetTeachers(params)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(result)
}

// GetTeacherByID godoc
// @Summary Get one teacher
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Router /admin/teachers/{id} [get]
func GetTeacherByID(c *fiber.Ctx) error {
	teacher, err := services.GetTeacherByID(c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(teacher)
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/teachers/{id} [put]
func UpdateTeacher(c *fiber.Ctx) error {
	// parsed into a request struct, not the model: the model hides password
	// from JSON so a password sent here would be dropped
	var req models.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	update := req.ToTeacher()
	if err := services.UpdateTeacher(c.Params("id"), &update); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher updated successfully"})
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/teachers/{id} [delete]
func DeleteTeacher(c *fiber.Ctx) error {
	if err := services.DeleteTeacher(c.Params("id")); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted successfully"})
}

// GetOwnTeacherProfile godoc
// @Summary Get the authenticated teacher's profile
// @Tags teacher-portal
// @Produce json
// @Success 200 {object} models.Teacher
// @Router /teacher/profile [get]
func GetOwnTeacherProfile(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	return c.JSON(principal.Teacher)
}

// GetTaughtCourses godoc
// @Summary List courses taught by the authenticated teacher
// @Tags teacher-portal
// @Produce json
// @Success 200 {array} models.Course
// @Router /teacher/courses [get]
func GetTaughtCourses(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	courses, err := services.GetCoursesByTeacher(principal.ID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(courses)
}

// CreateLecture godoc
// @Summary Open a lecture session for an owned course
// @Tags teacher-portal
// @Accept json
// @Produce json
// @Success 201 {object} models.Lecture
// @Failure 403 {object} models.ErrorResponse
// @Router /teacher/lectures [post]
func CreateLecture(c *fiber.Ctx) error {
	var req struct {
		CourseID string    `json:"courseId"`
		Date     time.Time `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	lecture, err := services.CreateLecture(principal.ID, req.CourseID, req.Date)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(lecture)
}

// GetLectures godoc
// @Summary List lecture sessions for a course
// @Tags teacher-portal
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} models.Lecture
// @Router /teacher/courses/{courseId}/lectures [get]
func GetLectures(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	lectures, err := services.GetLecturesByCourse(principal.ID, c.Params("courseId"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(lectures)
}

// RecordAttendance godoc
// @Summary Record attendance for a lecture
// @Description Rejects with 409 when any row duplicates an existing (student, lecture) record
// @Tags teacher-portal
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} models.ErrorResponse
// @Router /teacher/attendance [post]
func RecordAttendance(c *fiber.Ctx) error {
	var req struct {
		LectureID string                   `json:"lectureId"`
		Rows      []services.AttendanceRow `json:"rows"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	if err := services.RecordAttendance(principal.ID, req.LectureID, req.Rows); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Attendance recorded successfully"})
}

// GetLectureAttendance godoc
// @Summary List attendance rows for a lecture
// @Tags teacher-portal
// @Produce json
// @Param lectureId path string true "Lecture ID"
// @Success 200 {array} models.Attendance
// @Router /teacher/lectures/{lectureId}/attendance [get]
func GetLectureAttendance(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	records, err := services.GetAttendanceByLecture(principal.ID, c.Params("lectureId"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(records)
}

// EnterMarks godoc
// @Summary Bulk marks entry for an owned course
// @Description Per-row problems are skipped and reported; the batch itself succeeds
// @Tags teacher-portal
// @Accept json
// @Produce json
// @Success 200 {object} models.BulkMarksResult
// @Failure 403 {object} models.ErrorResponse
// @Router /teacher/marks [post]
func EnterMarks(c *fiber.Ctx) error {
	var req services.BulkMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	result, err := services.EnterMarks(principal.ID, &req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Marks entered successfully",
		"result":  result,
	})
}

// GetCourseMarks godoc
// @Summary List standalone marks rows for an owned course
// @Tags teacher-portal
// @Produce json
// @Param courseId path string true "Course ID"
// @Param examType query string false "Midterm or Final"
// @Success 200 {array} models.MarksRecord
// @Router /teacher/courses/{courseId}/marks [get]
func GetCourseMarks(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	records, err := services.GetMarksByCourse(principal.ID, c.Params("courseId"), c.Query("examType"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(records)
}
