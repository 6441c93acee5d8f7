package controllers

import (
	"fmt"

	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type emailLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type studentLoginRequest struct {
	RollNo     string `json:"rollNo"`
	Batch      string `json:"batch"`
	Department string `json:"department"`
	Password   string `json:"password"`
}

// rateLimitedResponse replies while the identifier is still inside its
// cooldown window.
func rateLimitedResponse(c *fiber.Ctx, identifier string) error {
	remaining := utils.GetRemainingCooldownTime(identifier)
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
			int(remaining.Minutes()),
			int(remaining.Seconds())%60),
		"code":          "RATE_LIMITED",
		"remainingTime": int(remaining.Seconds()),
	})
}

func setSecurityHeaders(c *fiber.Ctx) {
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")
}

// LoginAdmin godoc
// @Summary Admin login
// @Description Authenticate an admin with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body emailLoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/admin/login [post]
func LoginAdmin(c *fiber.Ctx) error {
	var req emailLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	if utils.IsRateLimited(req.Email) {
		return rateLimitedResponse(c, req.Email)
	}

	admin, token, err := services.AuthenticateAdmin(req.Email, req.Password)
	if err != nil {
		utils.LogLoginAttempt(req.Email, c.IP(), false)
		return utils.HandleAppError(c, err)
	}
	utils.LogLoginAttempt(req.Email, c.IP(), true)

	setSecurityHeaders(c)
	return c.JSON(fiber.Map{
		"token":   token,
		"message": "Login successful",
		"admin":   admin,
	})
}

// LoginTeacher godoc
// @Summary Teacher login
// @Description Authenticate a teacher with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body emailLoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/teacher/login [post]
func LoginTeacher(c *fiber.Ctx) error {
	var req emailLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	if utils.IsRateLimited(req.Email) {
		return rateLimitedResponse(c, req.Email)
	}

	teacher, token, err := services.AuthenticateTeacher(req.Email, req.Password)
	if err != nil {
		utils.LogLoginAttempt(req.Email, c.IP(), false)
		return utils.HandleAppError(c, err)
	}
	utils.LogLoginAttempt(req.Email, c.IP(), true)

	setSecurityHeaders(c)
	return c.JSON(fiber.Map{
		"token":   token,
		"message": "Login successful",
		"teacher": teacher,
	})
}

// LoginStudent godoc
// @Summary Student login
// @Description Authenticate a student with roll number, batch, department and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body studentLoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/student/login [post]
func LoginStudent(c *fiber.Ctx) error {
	var req studentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}
	if req.RollNo == "" || req.Batch == "" || req.Department == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Roll number, batch, department and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	if utils.IsRateLimited(req.RollNo) {
		return rateLimitedResponse(c, req.RollNo)
	}

	student, token, err := services.AuthenticateStudent(req.RollNo, req.Batch, req.Department, req.Password)
	if err != nil {
		utils.LogLoginAttempt(req.RollNo, c.IP(), false)
		return utils.HandleAppError(c, err)
	}
	utils.LogLoginAttempt(req.RollNo, c.IP(), true)

	setSecurityHeaders(c)
	return c.JSON(fiber.Map{
		"token":   token,
		"message": "Login successful",
		"student": student,
	})
}
