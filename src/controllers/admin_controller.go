package controllers

import (
	"net/http"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateAdmin godoc
// @Summary Create an admin
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body models.Admin true "Admin to create"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/admins [post]
func CreateAdmin(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	admin := models.Admin{Name: req.Name, Email: req.Email, Password: req.Password}
	if err := services.CreateAdmin(&admin); err != nil {
		return utils.HandleAppError(c, err)
	}

	admin.Password = ""
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

// GetDashboard godoc
// @Summary Entity counts for the admin dashboard
// @Tags admins
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Router /admin/dashboard [get]
func GetDashboard(c *fiber.Ctx) error {
	return c.JSON(services.GetDashboardSummary())
}
