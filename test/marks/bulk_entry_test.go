package marks

import (
	"testing"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBulkEntryRowDecisions(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Bulk Marks Row Decision Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestScoreBounds", func(t *testing.T) {
		timer := test.NewTestTimer("Score Bounds")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Score Bounds", Duration: duration, Passed: true})
		}()

		assert.True(t, services.ScoreInRange(0))
		assert.True(t, services.ScoreInRange(100))
		assert.True(t, services.ScoreInRange(87.5))
		assert.False(t, services.ScoreInRange(-0.1))
		assert.False(t, services.ScoreInRange(100.1))
		assert.False(t, services.ScoreInRange(-1))
		assert.False(t, services.ScoreInRange(101))
	})

	t.Run("TestEnrollmentGate", func(t *testing.T) {
		timer := test.NewTestTimer("Enrollment Gate")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Enrollment Gate", Duration: duration, Passed: true})
		}()

		enrolled := primitive.NewObjectID()
		other := primitive.NewObjectID()
		student := models.Student{
			RollNo:   "19-CS-042",
			Semester: 3,
			EnrolledCourses: []models.EnrolledCourse{
				{CourseID: enrolled, Semester: 3},
			},
		}

		assert.True(t, services.IsEnrolled(&student, enrolled))
		assert.False(t, services.IsEnrolled(&student, other))

		empty := models.Student{}
		assert.False(t, services.IsEnrolled(&empty, enrolled))
	})

	t.Run("TestExamTypeEnum", func(t *testing.T) {
		timer := test.NewTestTimer("Exam Type Enum")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Exam Type Enum", Duration: duration, Passed: true})
		}()

		assert.True(t, models.ValidExamType(models.ExamMidterm))
		assert.True(t, models.ValidExamType(models.ExamFinal))
		assert.False(t, models.ValidExamType("midterm"))
		assert.False(t, models.ValidExamType("Quiz"))
		assert.False(t, models.ValidExamType(""))
	})
}

// markSteps mirrors the guarded writes over an in-memory mark list: set
// matches only when a (course, examType) entry exists and replaces it in
// place, push appends only when none exists. The same guards the store
// enforces with $elemMatch.
func markSteps(marks *[]models.MarkEntry, entry models.MarkEntry) (func() (bool, error), func() (bool, error)) {
	match := func() int {
		for i, m := range *marks {
			if m.CourseID == entry.CourseID && m.ExamType == entry.ExamType {
				return i
			}
		}
		return -1
	}
	set := func() (bool, error) {
		i := match()
		if i < 0 {
			return false, nil
		}
		(*marks)[i].Score = entry.Score
		(*marks)[i].TotalMarks = entry.TotalMarks
		return true, nil
	}
	push := func() (bool, error) {
		if match() >= 0 {
			return false, nil
		}
		*marks = append(*marks, entry)
		return true, nil
	}
	return set, push
}

func TestMarksUpsertReplay(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Marks Upsert Replay Tests")
	defer suiteResult.PrintSummary()

	courseID := primitive.NewObjectID()

	t.Run("TestReplayedBatchLeavesListUnchanged", func(t *testing.T) {
		timer := test.NewTestTimer("Replayed Batch")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Replayed Batch", Duration: duration, Passed: true})
		}()

		entry := models.MarkEntry{CourseID: courseID, ExamType: models.ExamMidterm, Score: 72, TotalMarks: 100, Semester: 3}

		marks := []models.MarkEntry{}
		set, push := markSteps(&marks, entry)
		assert.NoError(t, services.ApplyMarkUpsert(set, push))
		assert.Len(t, marks, 1)
		first := append([]models.MarkEntry{}, marks...)

		set, push = markSteps(&marks, entry)
		assert.NoError(t, services.ApplyMarkUpsert(set, push))
		assert.Equal(t, first, marks, "replaying an identical batch must not change the list")
	})

	t.Run("TestResubmitReplacesInPlace", func(t *testing.T) {
		timer := test.NewTestTimer("Resubmit Replaces")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Resubmit Replaces", Duration: duration, Passed: true})
		}()

		marks := []models.MarkEntry{}
		set, push := markSteps(&marks, models.MarkEntry{CourseID: courseID, ExamType: models.ExamFinal, Score: 60, TotalMarks: 100, Semester: 4})
		assert.NoError(t, services.ApplyMarkUpsert(set, push))

		set, push = markSteps(&marks, models.MarkEntry{CourseID: courseID, ExamType: models.ExamFinal, Score: 85, TotalMarks: 100, Semester: 4})
		assert.NoError(t, services.ApplyMarkUpsert(set, push))

		assert.Len(t, marks, 1, "corrected resubmission must replace, never duplicate")
		assert.Equal(t, 85.0, marks[0].Score)
	})

	t.Run("TestLostPushRaceStillSingleEntry", func(t *testing.T) {
		timer := test.NewTestTimer("Lost Push Race")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Lost Push Race", Duration: duration, Passed: true})
		}()

		entry := models.MarkEntry{CourseID: courseID, ExamType: models.ExamMidterm, Score: 91, TotalMarks: 100, Semester: 3}
		rival := models.MarkEntry{CourseID: courseID, ExamType: models.ExamMidterm, Score: 40, TotalMarks: 100, Semester: 3}

		marks := []models.MarkEntry{}
		set, push := markSteps(&marks, entry)

		// a concurrent writer lands its entry between our set and push, so
		// the push guard sees an existing entry and refuses to append
		racedPush := func() (bool, error) {
			marks = append(marks, rival)
			return push()
		}

		assert.NoError(t, services.ApplyMarkUpsert(set, racedPush))
		assert.Len(t, marks, 1, "at most one entry may survive the race")
		assert.Equal(t, 91.0, marks[0].Score, "the retried in-place write wins")
	})
}
