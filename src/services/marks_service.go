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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BulkMarksRequest is the teacher-facing bulk entry payload.
type BulkMarksRequest struct {
	CourseID   string  `json:"courseId"`
	ExamType   string  `json:"examType"`
	TotalMarks float64 `json:"totalMarks"`
	Rows       []struct {
		StudentID string  `json:"studentId"`
		Score     float64 `json:"score"`
	} `json:"rows"`
}

const (
	skipScoreOutOfRange = "score out of range"
	skipInvalidID       = "invalid student ID"
	skipStudentUnknown  = "student not found"
	skipNotEnrolled     = "not enrolled in course"
	skipWriteFailed     = "write failed"
)

// ScoreInRange reports whether a mark is inside the accepted 0..100 domain.
func ScoreInRange(score float64) bool {
	return score >= 0 && score <= 100
}

// EnterMarks applies a bulk marks batch for a course the teacher owns.
// Per-row problems (bad score, unknown or unenrolled student) skip that row
// only and the batch still reports aggregate success; only structural
// problems (bad course, wrong owner, bad exam type) fail the request.
// Replaying an identical batch yields the same final state.
func EnterMarks(teacherID primitive.ObjectID, req *BulkMarksRequest) (*models.BulkMarksResult, error) {
	courseObjID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}
	if !models.ValidExamType(req.ExamType) {
		return nil, utils.ValidationError("Exam type must be Midterm or Final")
	}
	if req.TotalMarks <= 0 {
		return nil, utils.ValidationError("Total marks must be positive")
	}
	if len(req.Rows) == 0 {
		return nil, utils.ValidationError("No rows supplied")
	}

	if _, err := requireOwnedCourse(courseObjID, teacherID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := &models.BulkMarksResult{Skipped: []models.SkippedMarksRow{}}

	for _, row := range req.Rows {
		if !ScoreInRange(row.Score) {
			result.Skipped = append(result.Skipped, models.SkippedMarksRow{StudentID: row.StudentID, Reason: skipScoreOutOfRange})
			continue
		}

		studentObjID, err := primitive.ObjectIDFromHex(row.StudentID)
		if err != nil {
			result.Skipped = append(result.Skipped, models.SkippedMarksRow{StudentID: row.StudentID, Reason: skipInvalidID})
			continue
		}

		var student models.Student
		err = database.StudentCollection.FindOne(ctx, bson.M{"_id": studentObjID}).Decode(&student)
		if err == mongo.ErrNoDocuments {
			result.Skipped = append(result.Skipped, models.SkippedMarksRow{StudentID: row.StudentID, Reason: skipStudentUnknown})
			continue
		}
		if err != nil {
			return nil, utils.UpstreamError(err)
		}

		if !IsEnrolled(&student, courseObjID) {
			result.Skipped = append(result.Skipped, models.SkippedMarksRow{StudentID: row.StudentID, Reason: skipNotEnrolled})
			continue
		}

		if err := upsertEmbeddedMark(ctx, &student, courseObjID, req.ExamType, row.Score, req.TotalMarks); err != nil {
			result.Skipped = append(result.Skipped, models.SkippedMarksRow{StudentID: row.StudentID, Reason: skipWriteFailed})
			continue
		}

		if err := upsertMarksRecord(ctx, studentObjID, courseObjID, req.ExamType, row.Score, req.TotalMarks, student.Semester); err != nil {
			result.Skipped = append(result.Skipped, models.SkippedMarksRow{StudentID: row.StudentID, Reason: skipWriteFailed})
			continue
		}

		result.Updated++
	}

	return result, nil
}

// upsertEmbeddedMark keeps at most one entry per (course, examType) inside
// the student document. Both updates are guarded by $elemMatch on the same
// document so the read-check-append race of a naive scan cannot produce a
// duplicate entry: the $set only matches when the entry exists, the $push
// only when it does not, and each UpdateOne is atomic on the document. If a
// concurrent batch pushes the entry between the two steps the $push matches
// nothing and the $set retry lands on the now-existing entry.
func upsertEmbeddedMark(ctx context.Context, student *models.Student, courseID primitive.ObjectID, examType string, score, totalMarks float64) error {
	elem := bson.M{"courseId": courseID, "examType": examType}

	setFilter := bson.M{"_id": student.ID, "marks": bson.M{"$elemMatch": elem}}
	setUpdate := bson.M{"$set": bson.M{
		"marks.$.score":      score,
		"marks.$.totalMarks": totalMarks,
	}}

	pushFilter := bson.M{
		"_id":   student.ID,
		"marks": bson.M{"$not": bson.M{"$elemMatch": elem}},
	}
	pushUpdate := bson.M{"$push": bson.M{"marks": models.MarkEntry{
		CourseID:   courseID,
		ExamType:   examType,
		Score:      score,
		TotalMarks: totalMarks,
		Semester:   student.Semester,
	}}}

	set := func() (bool, error) {
		res, err := database.StudentCollection.UpdateOne(ctx, setFilter, setUpdate)
		if err != nil {
			return false, err
		}
		return res.MatchedCount > 0, nil
	}
	push := func() (bool, error) {
		res, err := database.StudentCollection.UpdateOne(ctx, pushFilter, pushUpdate)
		if err != nil {
			return false, err
		}
		return res.MatchedCount > 0, nil
	}

	return ApplyMarkUpsert(set, push)
}

// ApplyMarkUpsert sequences the two guarded writes: update-in-place first,
// guarded append second, then an in-place retry when a concurrent writer
// appended between the steps. Each step reports whether its guard matched
// the document.
func ApplyMarkUpsert(set, push func() (bool, error)) error {
	matched, err := set()
	if err != nil {
		return err
	}
	if matched {
		return nil
	}

	matched, err = push()
	if err != nil {
		return err
	}
	if matched {
		return nil
	}

	// lost the race to a concurrent writer; the entry exists now, update it
	_, err = set()
	return err
}

// upsertMarksRecord mirrors the mark into the standalone collection. The
// unique (studentId, courseId, examType) index plus an upsert keeps exactly
// one row regardless of retries or concurrent batches.
func upsertMarksRecord(ctx context.Context, studentID, courseID primitive.ObjectID, examType string, score, totalMarks float64, semester int) error {
	filter := bson.M{
		"studentId": studentID,
		"courseId":  courseID,
		"examType":  examType,
	}
	update := bson.M{"$set": bson.M{
		"score":      score,
		"totalMarks": totalMarks,
		"semester":   semester,
	}}

	_, err := database.MarksCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// concurrent upsert created the row first; apply the update to it
		_, err = database.MarksCollection.UpdateOne(ctx, filter, update)
	}
	return err
}

// GetMarksByStudent returns the embedded mark list for a student.
func GetMarksByStudent(studentID primitive.ObjectID) ([]models.MarkEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	err := database.StudentCollection.FindOne(ctx, bson.M{"_id": studentID},
		options.FindOne().SetProjection(bson.M{"marks": 1})).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Student not found")
	}
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	if student.Marks == nil {
		return []models.MarkEntry{}, nil
	}
	return student.Marks, nil
}

// GetMarksByCourse lists the standalone marks rows for a course the teacher
// owns, optionally filtered by exam type.
func GetMarksByCourse(teacherID primitive.ObjectID, courseID, examType string) ([]models.MarksRecord, error) {
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}
	if _, err := requireOwnedCourse(courseObjID, teacherID); err != nil {
		return nil, err
	}

	filter := bson.M{"courseId": courseObjID}
	if examType != "" {
		if !models.ValidExamType(examType) {
			return nil, utils.ValidationError("Exam type must be Midterm or Final")
		}
		filter["examType"] = examType
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.MarksCollection.Find(ctx, filter)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	records := []models.MarksRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, utils.UpstreamError(err)
	}
	return records, nil
}
