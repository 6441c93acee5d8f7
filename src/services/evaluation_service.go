package services

import (
	"context"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// normalizeEvaluation validates the kind against the closed enum and strips
// the Final-only fields from other kinds. Percentage values are stored as
// supplied; the caller's arithmetic is not re-verified.
func normalizeEvaluation(evaluation *models.Evaluation) error {
	if !models.EvaluationKinds[evaluation.Kind] {
		return utils.ValidationError("Evaluation kind must be Sessional, Midterm or Final")
	}
	if evaluation.Kind != models.EvaluationFinal {
		evaluation.ExamHall = ""
		evaluation.Status = ""
	}
	if evaluation.Date.IsZero() {
		evaluation.Date = time.Now()
	}
	return nil
}

// CreateEvaluation records an evaluation for a student in a course the
// teacher owns.
func CreateEvaluation(teacherID primitive.ObjectID, evaluation *models.Evaluation) error {
	if err := normalizeEvaluation(evaluation); err != nil {
		return err
	}
	if _, err := requireOwnedCourse(evaluation.CourseID, teacherID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var student models.Student
	err := database.StudentCollection.FindOne(ctx, bson.M{"_id": evaluation.StudentID}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return utils.NotFoundError("Student not found")
	}
	if err != nil {
		return utils.UpstreamError(err)
	}

	evaluation.ID = primitive.NewObjectID()
	_, err = database.EvaluationCollection.InsertOne(ctx, evaluation)
	if err != nil {
		return utils.UpstreamError(err)
	}
	return nil
}

// UpdateEvaluation replaces the scored components of an existing evaluation
// owned by the teacher.
func UpdateEvaluation(teacherID primitive.ObjectID, id string, evaluation *models.Evaluation) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid evaluation ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Evaluation
	err = database.EvaluationCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return utils.NotFoundError("Evaluation not found")
	}
	if err != nil {
		return utils.UpstreamError(err)
	}

	if _, err := requireOwnedCourse(existing.CourseID, teacherID); err != nil {
		return err
	}

	set := bson.M{
		"assignments": evaluation.Assignments,
		"quizzes":     evaluation.Quizzes,
		"attendance":  evaluation.Attendance,
		"totalScore":  evaluation.TotalScore,
		"block":       evaluation.Block,
		"room":        evaluation.Room,
	}
	if existing.Kind == models.EvaluationFinal {
		set["examHall"] = evaluation.ExamHall
		set["status"] = evaluation.Status
	}

	_, err = database.EvaluationCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return utils.UpstreamError(err)
	}
	return nil
}

// GetEvaluationsByCourse lists evaluations for a course the teacher owns,
// optionally narrowed to one kind.
func GetEvaluationsByCourse(teacherID primitive.ObjectID, courseID, kind string) ([]models.Evaluation, error) {
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}
	if _, err := requireOwnedCourse(courseObjID, teacherID); err != nil {
		return nil, err
	}

	filter := bson.M{"courseId": courseObjID}
	if kind != "" {
		if !models.EvaluationKinds[kind] {
			return nil, utils.ValidationError("Evaluation kind must be Sessional, Midterm or Final")
		}
		filter["kind"] = kind
	}
	return findEvaluations(filter)
}

// GetEvaluationsByStudent lists a student's own evaluations, optionally
// narrowed to one kind.
func GetEvaluationsByStudent(studentID primitive.ObjectID, kind string) ([]models.Evaluation, error) {
	filter := bson.M{"studentId": studentID}
	if kind != "" {
		if !models.EvaluationKinds[kind] {
			return nil, utils.ValidationError("Evaluation kind must be Sessional, Midterm or Final")
		}
		filter["kind"] = kind
	}
	return findEvaluations(filter)
}

func findEvaluations(filter bson.M) ([]models.Evaluation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.EvaluationCollection.Find(ctx, filter)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	evaluations := []models.Evaluation{}
	if err := cursor.All(ctx, &evaluations); err != nil {
		return nil, utils.UpstreamError(err)
	}
	return evaluations, nil
}
