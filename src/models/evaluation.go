package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EvaluationSessional = "Sessional"
	EvaluationMidterm   = "Midterm"
	EvaluationFinal     = "Final"
)

// EvaluationKinds is the closed set of evaluation kinds. The three kinds are
// structurally identical except that Final carries examHall and status, so
// they live in one collection with a kind tag instead of a type per kind.
var EvaluationKinds = map[string]bool{
	EvaluationSessional: true,
	EvaluationMidterm:   true,
	EvaluationFinal:     true,
}

// ScoreComponent one scored component of an evaluation. Percentage is stored
// as supplied by the caller and is not recomputed from Score/Total.
type ScoreComponent struct {
	Score      float64 `bson:"score" json:"score"`
	Total      float64 `bson:"total" json:"total"`
	Percentage float64 `bson:"percentage" json:"percentage"`
}

// Evaluation ใบประเมินผลรายวิชา
type Evaluation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind        string             `bson:"kind" json:"kind" enums:"Sessional,Midterm,Final"`
	CourseID    primitive.ObjectID `bson:"courseId" json:"courseId"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	Assignments ScoreComponent     `bson:"assignments" json:"assignments"`
	Quizzes     ScoreComponent     `bson:"quizzes" json:"quizzes"`
	Attendance  ScoreComponent     `bson:"attendance" json:"attendance"`
	TotalScore  ScoreComponent     `bson:"totalScore" json:"totalScore"`
	Date        time.Time          `bson:"date" json:"date"`
	Block       string             `bson:"block" json:"block"`
	Room        string             `bson:"room" json:"room"`
	ExamHall    string             `bson:"examHall,omitempty" json:"examHall,omitempty"` // Final only
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`     // Final only
}
