package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Departments รายชื่อภาควิชาที่เปิดรับ
var Departments = []string{"CS", "EE", "ME", "CE", "BBA"}

// Batches admission years accepted by the portal
var Batches = []string{"2019", "2020", "2021", "2022", "2023", "2024", "2025"}

const (
	MinSemester = 1
	MaxSemester = 8
)

// ValidDepartment reports whether d is one of the supported departments.
func ValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

// ValidBatch reports whether b is a supported admission batch.
func ValidBatch(b string) bool {
	for _, v := range Batches {
		if v == b {
			return true
		}
	}
	return false
}

// EnrolledCourse คอร์สที่นิสิตลงทะเบียน
type EnrolledCourse struct {
	CourseID primitive.ObjectID `bson:"courseId" json:"courseId"`
	Semester int                `bson:"semester" json:"semester"`
}

// MarkEntry is the embedded per-course mark inside a student document.
// At most one entry exists per (courseId, examType) pair.
type MarkEntry struct {
	CourseID   primitive.ObjectID `bson:"courseId" json:"courseId"`
	ExamType   string             `bson:"examType" json:"examType" enums:"Midterm,Final"`
	Score      float64            `bson:"score" json:"score" example:"87"`
	TotalMarks float64            `bson:"totalMarks" json:"totalMarks" example:"100"`
	Semester   int                `bson:"semester" json:"semester" example:"3"`
}

// SemesterResult is one point of the GPA trajectory.
type SemesterResult struct {
	Semester int     `bson:"semester" json:"semester" example:"3"`
	GPA      float64 `bson:"gpa" json:"gpa" example:"3.42"`
}

// StudentUpdateRequest is the admin-facing update payload. It exists because
// Student hides password from JSON, so parsing an update body into the model
// would silently drop a password change.
type StudentUpdateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Semester   int    `json:"semester"`
	Department string `json:"department"`
}

// ToStudent carries the payload into the model for the service layer.
func (r *StudentUpdateRequest) ToStudent() Student {
	return Student{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Semester:   r.Semester,
		Department: r.Department,
	}
}

// Student นิสิต
type Student struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Email           string             `bson:"email" json:"email" validate:"required,email"`
	RollNo          string             `bson:"rollNo" json:"rollNo" validate:"required"`
	Password        string             `bson:"password,omitempty" json:"-"`
	Semester        int                `bson:"semester" json:"semester"`
	Department      string             `bson:"department" json:"department"`
	Batch           string             `bson:"batch" json:"batch"`
	EnrolledCourses []EnrolledCourse   `bson:"enrolledCourses" json:"enrolledCourses"`
	Marks           []MarkEntry        `bson:"marks" json:"marks"`
	SemesterResults []SemesterResult   `bson:"semesterResults" json:"semesterResults"`
}
