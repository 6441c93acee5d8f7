package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name        string               `json:"name" bson:"name" example:"Introduction to Programming"`
	Code        string               `json:"code" bson:"code" example:"CS-101"`
	CreditHours int                  `json:"creditHours" bson:"creditHours" example:"3"`
	Department  string               `json:"department" bson:"department" example:"CS"`
	TeacherID   primitive.ObjectID   `json:"teacherId,omitempty" bson:"teacherId,omitempty" swaggertype:"string"`
	StudentIDs  []primitive.ObjectID `json:"studentIds" bson:"studentIds"`
}

// CourseFilters ใช้เก็บค่าการกรองสำหรับคอร์ส
type CourseFilters struct {
	Department string `json:"department" query:"department"`
	TeacherID  string `json:"teacherId" query:"teacherId"`
}
