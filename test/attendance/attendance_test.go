package attendance

import (
	"testing"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/src/utils"
	"Campus-Portal-Backend/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAttendanceRate(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Attendance Rate Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestRateComputation", func(t *testing.T) {
		timer := test.NewTestTimer("Rate Computation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Rate Computation", Duration: duration, Passed: true})
		}()

		assert.Equal(t, 0.75, services.ComputeAttendanceRate(3, 4))
		assert.Equal(t, 1.0, services.ComputeAttendanceRate(10, 10))
		assert.Equal(t, 0.0, services.ComputeAttendanceRate(0, 12))
	})

	t.Run("TestZeroLecturesIsDefined", func(t *testing.T) {
		timer := test.NewTestTimer("Zero Lectures Is Defined")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Zero Lectures Is Defined", Duration: duration, Passed: true})
		}()

		// a course with no lectures held yet must not divide by zero
		assert.Equal(t, 0.0, services.ComputeAttendanceRate(0, 0))
	})
}

func TestAttendanceStatusEnum(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Attendance Status Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestStatusValues", func(t *testing.T) {
		timer := test.NewTestTimer("Status Values")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Status Values", Duration: duration, Passed: true})
		}()

		assert.True(t, models.ValidAttendanceStatus(models.AttendancePresent))
		assert.True(t, models.ValidAttendanceStatus(models.AttendanceAbsent))
		assert.False(t, models.ValidAttendanceStatus("Present"))
		assert.False(t, models.ValidAttendanceStatus("late"))
		assert.False(t, models.ValidAttendanceStatus(""))
	})
}

func TestDuplicateAttendanceIsConflict(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Duplicate Attendance Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestDuplicateKeyMapsToConflict", func(t *testing.T) {
		timer := test.NewTestTimer("Duplicate Key Maps To Conflict")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Duplicate Key Maps To Conflict", Duration: duration, Passed: true})
		}()

		// the unique (studentId, lectureId) index reports resubmission as a
		// duplicate-key write error; the service surfaces it as Conflict
		dup := mongo.BulkWriteException{
			WriteErrors: []mongo.BulkWriteError{{WriteError: mongo.WriteError{Code: 11000}}},
		}
		appErr := utils.WrapStoreError(dup, "Attendance already recorded for this lecture")
		assert.Equal(t, utils.KindConflict, appErr.Kind)
		assert.Equal(t, "Attendance already recorded for this lecture", appErr.Message)
	})
}

func TestAttendanceBatchPrechecks(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Attendance Batch Precheck Tests")
	defer suiteResult.PrintSummary()

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	t.Run("TestAlreadyRecordedIntersection", func(t *testing.T) {
		timer := test.NewTestTimer("Already Recorded Intersection")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Already Recorded Intersection", Duration: duration, Passed: true})
		}()

		// the whole batch is rejected before any insert, so a corrected
		// resubmission never conflicts with a partial prefix it left behind
		conflicts := services.AlreadyRecordedStudents([]primitive.ObjectID{b}, []primitive.ObjectID{a, b, c})
		assert.Equal(t, []primitive.ObjectID{b}, conflicts)

		assert.Empty(t, services.AlreadyRecordedStudents([]primitive.ObjectID{}, []primitive.ObjectID{a, b}))
		assert.Empty(t, services.AlreadyRecordedStudents([]primitive.ObjectID{c}, []primitive.ObjectID{a, b}))

		// batch order is preserved so the reported conflict is deterministic
		conflicts = services.AlreadyRecordedStudents([]primitive.ObjectID{c, a}, []primitive.ObjectID{a, b, c})
		assert.Equal(t, []primitive.ObjectID{a, c}, conflicts)
	})

	t.Run("TestRepeatedStudentInBatch", func(t *testing.T) {
		timer := test.NewTestTimer("Repeated Student In Batch")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Repeated Student In Batch", Duration: duration, Passed: true})
		}()

		id, repeated := services.FirstRepeatedStudent([]primitive.ObjectID{a, b, a})
		assert.True(t, repeated)
		assert.Equal(t, a, id)

		_, repeated = services.FirstRepeatedStudent([]primitive.ObjectID{a, b, c})
		assert.False(t, repeated)

		_, repeated = services.FirstRepeatedStudent(nil)
		assert.False(t, repeated)
	})
}
