package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// AuthPrincipal is the single authenticated identity the auth middleware
// attaches to the request. Exactly one of Admin/Teacher/Student is set,
// matching Role, and the password hash is already stripped.
type AuthPrincipal struct {
	Role  string
	ID    primitive.ObjectID
	Name  string
	Email string

	Admin   *Admin
	Teacher *Teacher
	Student *Student
}
