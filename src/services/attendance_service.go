package services

import (
	"context"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttendanceRow is one student's status for a lecture.
type AttendanceRow struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
}

// AlreadyRecordedStudents intersects the student IDs already recorded for a
// lecture with the IDs in an incoming batch, preserving batch order.
func AlreadyRecordedStudents(recorded, batch []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(recorded))
	for _, id := range recorded {
		seen[id] = true
	}
	conflicts := []primitive.ObjectID{}
	for _, id := range batch {
		if seen[id] {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts
}

// FirstRepeatedStudent returns the first student ID listed twice in a batch.
func FirstRepeatedStudent(batch []primitive.ObjectID) (primitive.ObjectID, bool) {
	seen := make(map[primitive.ObjectID]bool, len(batch))
	for _, id := range batch {
		if seen[id] {
			return id, true
		}
		seen[id] = true
	}
	return primitive.NilObjectID, false
}

// RecordAttendance writes attendance rows for a lecture the teacher owns.
// A row for an already-recorded (student, lecture) pair rejects the whole
// request with Conflict before anything is inserted — attendance is a
// historical fact, resubmission must not rewrite it, and a rejected batch
// must not leave a partial prefix behind. The unique index still backs the
// check, and the insert is unordered so a concurrent duplicate fails only
// its own row.
func RecordAttendance(teacherID primitive.ObjectID, lectureID string, rows []AttendanceRow) error {
	if len(rows) == 0 {
		return utils.ValidationError("No attendance rows supplied")
	}

	lectureObjID, err := primitive.ObjectIDFromHex(lectureID)
	if err != nil {
		return utils.ValidationError("Invalid lecture ID")
	}

	lecture, err := getLecture(lectureObjID)
	if err != nil {
		return err
	}
	if _, err := requireOwnedCourse(lecture.CourseID, teacherID); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(rows))
	batchIDs := make([]primitive.ObjectID, 0, len(rows))
	now := time.Now()
	for _, row := range rows {
		if !models.ValidAttendanceStatus(row.Status) {
			return utils.ValidationError("Status must be present or absent")
		}
		studentObjID, err := primitive.ObjectIDFromHex(row.StudentID)
		if err != nil {
			return utils.ValidationError("Invalid student ID: " + row.StudentID)
		}
		batchIDs = append(batchIDs, studentObjID)
		docs = append(docs, models.Attendance{
			ID:        primitive.NewObjectID(),
			StudentID: studentObjID,
			LectureID: lectureObjID,
			CourseID:  lecture.CourseID,
			TeacherID: teacherID,
			Status:    row.Status,
			Date:      now,
		})
	}

	if id, repeated := FirstRepeatedStudent(batchIDs); repeated {
		return utils.ValidationError("Student listed more than once: " + id.Hex())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.AttendanceCollection.Find(ctx, bson.M{
		"lectureId": lectureObjID,
		"studentId": bson.M{"$in": batchIDs},
	})
	if err != nil {
		return utils.UpstreamError(err)
	}
	recorded := []models.Attendance{}
	if err := cursor.All(ctx, &recorded); err != nil {
		return utils.UpstreamError(err)
	}
	if len(recorded) > 0 {
		recordedIDs := make([]primitive.ObjectID, 0, len(recorded))
		for _, r := range recorded {
			recordedIDs = append(recordedIDs, r.StudentID)
		}
		conflicts := AlreadyRecordedStudents(recordedIDs, batchIDs)
		return utils.ConflictError("Attendance already recorded for student: " + conflicts[0].Hex())
	}

	_, err = database.AttendanceCollection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return utils.WrapStoreError(err, "Attendance already recorded for this lecture")
	}
	return nil
}

// ComputeAttendanceRate is the pure division underneath the rate view. Zero
// total lectures yields 0, not a division error.
func ComputeAttendanceRate(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total)
}

// GetAttendanceRate computes a student's attendance rate for one course
// fresh on every read: present lectures over total lectures held.
func GetAttendanceRate(studentID primitive.ObjectID, courseID string) (*models.AttendanceRate, error) {
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := database.LectureCollection.CountDocuments(ctx, bson.M{"courseId": courseObjID})
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	present, err := database.AttendanceCollection.CountDocuments(ctx, bson.M{
		"studentId": studentID,
		"courseId":  courseObjID,
		"status":    models.AttendancePresent,
	})
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	return &models.AttendanceRate{
		CourseID:      courseObjID,
		PresentCount:  present,
		TotalLectures: total,
		Rate:          ComputeAttendanceRate(present, total),
	}, nil
}

// GetAttendanceByLecture lists the rows recorded for one lecture, for the
// teacher's review view.
func GetAttendanceByLecture(teacherID primitive.ObjectID, lectureID string) ([]models.Attendance, error) {
	lectureObjID, err := primitive.ObjectIDFromHex(lectureID)
	if err != nil {
		return nil, utils.ValidationError("Invalid lecture ID")
	}

	lecture, err := getLecture(lectureObjID)
	if err != nil {
		return nil, err
	}
	if _, err := requireOwnedCourse(lecture.CourseID, teacherID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.AttendanceCollection.Find(ctx, bson.M{"lectureId": lectureObjID})
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	records := []models.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, utils.UpstreamError(err)
	}
	return records, nil
}
