package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lecture is one class session; attendance rows reference it.
type Lecture struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID    primitive.ObjectID `bson:"courseId" json:"courseId"`
	TeacherID   primitive.ObjectID `bson:"teacherId" json:"teacherId"`
	Date        time.Time          `bson:"date" json:"date"`
	SessionCode string             `bson:"sessionCode" json:"sessionCode"`
}
