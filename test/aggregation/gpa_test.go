package aggregation

import (
	"testing"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/services"
	"Campus-Portal-Backend/test"

	"github.com/stretchr/testify/assert"
)

func TestGPATrajectory(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("GPA Trajectory Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestSortedAscendingRegardlessOfInputOrder", func(t *testing.T) {
		timer := test.NewTestTimer("Sorted Ascending")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Sorted Ascending", Duration: duration, Passed: true})
		}()

		input := []models.SemesterResult{
			{Semester: 5, GPA: 3.1},
			{Semester: 1, GPA: 2.8},
			{Semester: 3, GPA: 3.6},
			{Semester: 2, GPA: 3.0},
			{Semester: 4, GPA: 3.4},
		}

		out := services.GPATrajectory(input)

		assert.Len(t, out, 5)
		for i := 1; i < len(out); i++ {
			assert.Less(t, out[i-1].Semester, out[i].Semester)
		}
		assert.Equal(t, 2.8, out[0].GPA)
		assert.Equal(t, 3.1, out[4].GPA)

		// input order preserved for the caller
		assert.Equal(t, 5, input[0].Semester)
	})

	t.Run("TestEmptyResultListYieldsEmptySequence", func(t *testing.T) {
		timer := test.NewTestTimer("Empty Result List")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Empty Result List", Duration: duration, Passed: true})
		}()

		out := services.GPATrajectory(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)

		out = services.GPATrajectory([]models.SemesterResult{})
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("TestSingleSemester", func(t *testing.T) {
		timer := test.NewTestTimer("Single Semester")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Single Semester", Duration: duration, Passed: true})
		}()

		out := services.GPATrajectory([]models.SemesterResult{{Semester: 7, GPA: 3.9}})
		assert.Equal(t, []models.SemesterResult{{Semester: 7, GPA: 3.9}}, out)
	})
}
