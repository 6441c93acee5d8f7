package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// ValidAttendanceStatus reports whether s is a supported status value.
func ValidAttendanceStatus(s string) bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// Attendance บันทึกการเข้าเรียน — at most one row per (studentId, lectureId),
// enforced by a unique index so resubmission cannot rewrite history.
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	LectureID primitive.ObjectID `bson:"lectureId" json:"lectureId"`
	CourseID  primitive.ObjectID `bson:"courseId" json:"courseId"`
	TeacherID primitive.ObjectID `bson:"teacherId" json:"teacherId"`
	Status    string             `bson:"status" json:"status" enums:"present,absent"`
	Date      time.Time          `bson:"date" json:"date"`
}

// AttendanceRate is the derived per-course view, computed fresh on read.
type AttendanceRate struct {
	CourseID      primitive.ObjectID `json:"courseId"`
	PresentCount  int64              `json:"presentCount"`
	TotalLectures int64              `json:"totalLectures"`
	Rate          float64            `json:"rate"`
}
