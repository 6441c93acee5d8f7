package services

import (
	"context"
	"log"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetDashboardSummary reads the entity cardinalities independently. One
// failing count is reported as -1 with Partial set; it never suppresses the
// counts that did succeed.
func GetDashboardSummary() *models.DashboardSummary {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary := &models.DashboardSummary{}

	students, err := database.StudentCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("⚠️ student count failed: %v", err)
		summary.Students = -1
		summary.Partial = true
	} else {
		summary.Students = students
	}

	teachers, err := database.TeacherCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("⚠️ teacher count failed: %v", err)
		summary.Teachers = -1
		summary.Partial = true
	} else {
		summary.Teachers = teachers
	}

	courses, err := database.CourseCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("⚠️ course count failed: %v", err)
		summary.Courses = -1
		summary.Partial = true
	} else {
		summary.Courses = courses
	}

	return summary
}
