package controllers

import (
	"Campus-Portal-Backend/src/middleware"
	"Campus-Portal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// middlewarePrincipal returns the principal AuthJWT attached. Routes behind
// the middleware always have one; the nil case only happens on a
// misconfigured route table.
func middlewarePrincipal(c *fiber.Ctx) *models.AuthPrincipal {
	return middleware.Principal(c)
}

func enrolledCourseIDs(student *models.Student) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(student.EnrolledCourses))
	for _, ec := range student.EnrolledCourses {
		ids = append(ids, ec.CourseID)
	}
	return ids
}
