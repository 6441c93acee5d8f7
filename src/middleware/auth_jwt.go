package middleware

import (
	"context"
	"strings"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const principalKey = "principal"

// AuthJWT verifies the bearer token, resolves it back to exactly one
// principal record and attaches it to the request. Handlers behind it never
// see the raw token. Any step failing ends the request with a 401.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	principal, err := resolvePrincipal(claims)
	if err != nil {
		// the token was valid but points at nothing; keep the reply generic
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// resolvePrincipal loads the full principal record for the role claim,
// password stripped. Exactly one collection is queried per role.
func resolvePrincipal(claims *utils.JWTClaims) (*models.AuthPrincipal, error) {
	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": objID}

	switch claims.Role {
	case models.RoleAdmin:
		var admin models.Admin
		if err := database.AdminCollection.FindOne(ctx, filter).Decode(&admin); err != nil {
			return nil, err
		}
		admin.Password = ""
		return &models.AuthPrincipal{
			Role: models.RoleAdmin, ID: admin.ID, Name: admin.Name, Email: admin.Email, Admin: &admin,
		}, nil

	case models.RoleTeacher:
		var teacher models.Teacher
		if err := database.TeacherCollection.FindOne(ctx, filter).Decode(&teacher); err != nil {
			return nil, err
		}
		teacher.Password = ""
		return &models.AuthPrincipal{
			Role: models.RoleTeacher, ID: teacher.ID, Name: teacher.Name, Email: teacher.Email, Teacher: &teacher,
		}, nil

	case models.RoleStudent:
		var student models.Student
		if err := database.StudentCollection.FindOne(ctx, filter).Decode(&student); err != nil {
			return nil, err
		}
		student.Password = ""
		return &models.AuthPrincipal{
			Role: models.RoleStudent, ID: student.ID, Name: student.Name, Email: student.Email, Student: &student,
		}, nil
	}

	return nil, fiber.ErrUnauthorized
}

// Principal returns the authenticated principal attached by AuthJWT, or nil
// when the middleware didn't run.
func Principal(c *fiber.Ctx) *models.AuthPrincipal {
	principal, _ := c.Locals(principalKey).(*models.AuthPrincipal)
	return principal
}

// RequireRoles rejects with 403 unless the resolved role is in the allowed
// set. Pure check on the already-resolved principal; it never re-touches the
// credential store.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := Principal(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
		}
		if !RoleAllowed(principal.Role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to access this resource"})
		}
		return c.Next()
	}
}

// RoleAllowed reports whether role is one of the allowed roles.
func RoleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
