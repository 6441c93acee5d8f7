package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherUpdateRequest is the admin-facing update payload. Teacher hides
// password from JSON, so update bodies are parsed into this instead.
type TeacherUpdateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Education  string `json:"education"`
	Department string `json:"department"`
}

// ToTeacher carries the payload into the model for the service layer.
func (r *TeacherUpdateRequest) ToTeacher() Teacher {
	return Teacher{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Education:  r.Education,
		Department: r.Department,
	}
}

// Teacher faculty member
type Teacher struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Education  string             `bson:"education" json:"education" example:"PhD Computer Science"`
	Department string             `bson:"department" json:"department" example:"CS"`
}
