package controllers

import (
	"net/http"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.Course true "Course to create"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/courses [post]
func CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := services.CreateCourse(&course); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

// GetCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Param department query string false "Filter by department"
// @Param teacherId query string false "Filter by teacher"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/courses [get]
func GetCourses(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	var filters models.CourseFilters
	if err := c.QueryParser(&filters); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	result, err := services.GetCourses(params, filters)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(result)
}

// GetCourseByID godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Router /admin/courses/{id} [get]
func GetCourseByID(c *fiber.Ctx) error {
	course, err := services.GetCourseByID(c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(course)
}

// AssignTeacher godoc
// @Summary Assign a teacher to a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/courses/{id}/teacher [put]
func AssignTeacher(c *fiber.Ctx) error {
	var req struct {
		TeacherID string `json:"teacherId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := services.AssignTeacher(c.Params("id"), req.TeacherID); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher assigned successfully"})
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/courses/{id} [delete]
func DeleteCourse(c *fiber.Ctx) error {
	if err := services.DeleteCourse(c.Params("id")); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
