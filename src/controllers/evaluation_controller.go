package controllers

import (
	"net/http"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateEvaluation godoc
// @Summary Record an evaluation for a student
// @Tags teacher-portal
// @Accept json
// @Produce json
// @Param evaluation body models.Evaluation true "Evaluation"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Router /teacher/evaluations [post]
func CreateEvaluation(c *fiber.Ctx) error {
	var evaluation models.Evaluation
	if err := c.BodyParser(&evaluation); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	if err := services.CreateEvaluation(principal.ID, &evaluation); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":    "Evaluation recorded successfully",
		"evaluation": evaluation,
	})
}

// UpdateEvaluation godoc
// @Summary Update an evaluation's scored components
// @Tags teacher-portal
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} map[string]interface{}
// @Router /teacher/evaluations/{id} [put]
func UpdateEvaluation(c *fiber.Ctx) error {
	var evaluation models.Evaluation
	if err := c.BodyParser(&evaluation); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	principal := middlewarePrincipal(c)
	if err := services.UpdateEvaluation(principal.ID, c.Params("id"), &evaluation); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Evaluation updated successfully"})
}

// GetCourseEvaluations godoc
// @Summary List evaluations for an owned course
// @Tags teacher-portal
// @Produce json
// @Param courseId query string true "Course ID"
// @Param kind query string false "Sessional, Midterm or Final"
// @Success 200 {array} models.Evaluation
// @Router /teacher/evaluations [get]
func GetCourseEvaluations(c *fiber.Ctx) error {
	principal := middlewarePrincipal(c)
	evaluations, err := services.GetEvaluationsByCourse(principal.ID, c.Query("courseId"), c.Query("kind"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(evaluations)
}
