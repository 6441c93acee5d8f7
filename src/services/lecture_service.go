package services

import (
	"context"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateLecture opens a class session for a course the teacher owns.
func CreateLecture(teacherID primitive.ObjectID, courseID string, date time.Time) (*models.Lecture, error) {
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}

	if _, err := requireOwnedCourse(courseObjID, teacherID); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	lecture := &models.Lecture{
		ID:          primitive.NewObjectID(),
		CourseID:    courseObjID,
		TeacherID:   teacherID,
		Date:        date,
		SessionCode: uuid.NewString(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.LectureCollection.InsertOne(ctx, lecture)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	return lecture, nil
}

// GetLecturesByCourse lists the sessions held for a course the teacher owns.
func GetLecturesByCourse(teacherID primitive.ObjectID, courseID string) ([]models.Lecture, error) {
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}

	if _, err := requireOwnedCourse(courseObjID, teacherID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.LectureCollection.Find(ctx, bson.M{"courseId": courseObjID})
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	lectures := []models.Lecture{}
	if err := cursor.All(ctx, &lectures); err != nil {
		return nil, utils.UpstreamError(err)
	}
	return lectures, nil
}

func getLecture(id primitive.ObjectID) (*models.Lecture, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var lecture models.Lecture
	err := database.LectureCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&lecture)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Lecture not found")
	}
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	return &lecture, nil
}
