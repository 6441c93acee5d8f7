package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ExamMidterm = "Midterm"
	ExamFinal   = "Final"
)

// ValidExamType reports whether t is a supported exam type.
func ValidExamType(t string) bool {
	return t == ExamMidterm || t == ExamFinal
}

// MarksRecord is the standalone marks row used by teacher bulk entry.
// At most one row exists per (studentId, courseId, examType), enforced by a
// unique index.
type MarksRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID `bson:"studentId" json:"studentId"`
	CourseID   primitive.ObjectID `bson:"courseId" json:"courseId"`
	ExamType   string             `bson:"examType" json:"examType" enums:"Midterm,Final"`
	Score      float64            `bson:"score" json:"score"`
	TotalMarks float64            `bson:"totalMarks" json:"totalMarks"`
	Semester   int                `bson:"semester" json:"semester"`
}

// SkippedMarksRow records why one row of a bulk batch was not applied.
type SkippedMarksRow struct {
	StudentID string `json:"studentId"`
	Reason    string `json:"reason"`
}

// BulkMarksResult is the aggregate outcome of a bulk marks batch. Per-row
// problems land in Skipped; only structural problems fail the whole batch.
type BulkMarksResult struct {
	Updated int               `json:"updated"`
	Skipped []SkippedMarksRow `json:"skipped"`
}
