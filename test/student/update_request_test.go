package student

import (
	"encoding/json"
	"testing"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/test"

	"github.com/stretchr/testify/assert"
)

func TestUpdatePayloadKeepsPassword(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Update Payload Tests")
	defer suiteResult.PrintSummary()

	body := []byte(`{"name":"Ahmed","password":"newSecret123"}`)

	t.Run("TestModelDropsPasswordFromJSON", func(t *testing.T) {
		timer := test.NewTestTimer("Model Drops Password")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Model Drops Password", Duration: duration, Passed: true})
		}()

		// the model hides password from JSON for output safety, which is
		// exactly why update bodies must not be parsed into it
		var s models.Student
		assert.NoError(t, json.Unmarshal(body, &s))
		assert.Equal(t, "Ahmed", s.Name)
		assert.Empty(t, s.Password)

		var tc models.Teacher
		assert.NoError(t, json.Unmarshal(body, &tc))
		assert.Empty(t, tc.Password)
	})

	t.Run("TestStudentUpdateRequestKeepsPassword", func(t *testing.T) {
		timer := test.NewTestTimer("Student Update Request")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Student Update Request", Duration: duration, Passed: true})
		}()

		var req models.StudentUpdateRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "newSecret123", req.Password)

		update := req.ToStudent()
		assert.Equal(t, "Ahmed", update.Name)
		assert.Equal(t, "newSecret123", update.Password, "a submitted password change must reach the service layer")
	})

	t.Run("TestTeacherUpdateRequestKeepsPassword", func(t *testing.T) {
		timer := test.NewTestTimer("Teacher Update Request")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Teacher Update Request", Duration: duration, Passed: true})
		}()

		var req models.TeacherUpdateRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "newSecret123", req.Password)

		update := req.ToTeacher()
		assert.Equal(t, "newSecret123", update.Password)
	})

	t.Run("TestModelNeverSerializesPassword", func(t *testing.T) {
		timer := test.NewTestTimer("Model Never Serializes Password")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Model Never Serializes Password", Duration: duration, Passed: true})
		}()

		out, err := json.Marshal(models.Student{Name: "Ahmed", Password: "$2a$10$hash"})
		assert.NoError(t, err)
		assert.NotContains(t, string(out), "hash")
		assert.NotContains(t, string(out), "password")
	})
}
