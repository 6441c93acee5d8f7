package auth

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"
	"Campus-Portal-Backend/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func errorStatus(t *testing.T, err error) models.ErrorResponse {
	t.Helper()

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return utils.HandleAppError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, testErr)
	defer resp.Body.Close()

	var body models.ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, resp.StatusCode, body.Status)
	return body
}

func TestErrorTaxonomy(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Error Taxonomy Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestKindToStatusMapping", func(t *testing.T) {
		timer := test.NewTestTimer("Kind To Status Mapping")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Kind To Status Mapping", Duration: duration, Passed: true})
		}()

		cases := []struct {
			err        error
			wantStatus int
			wantCode   string
		}{
			{utils.ValidationError("Semester must be between 1 and 8"), 400, "VALIDATION_ERROR"},
			{utils.AuthenticationError(), 401, "AUTH_FAILED"},
			{utils.AuthorizationError("You do not teach this course"), 403, "FORBIDDEN"},
			{utils.NotFoundError("Student not found"), 404, "NOT_FOUND"},
			{utils.ConflictError("Attendance already recorded for this lecture"), 409, "CONFLICT"},
			{utils.UpstreamError(errors.New("connection refused")), 502, "UPSTREAM_ERROR"},
		}

		for _, tc := range cases {
			body := errorStatus(t, tc.err)
			assert.Equal(t, tc.wantStatus, body.Status, "status for %v", tc.err)
			assert.Equal(t, tc.wantCode, body.Code, "code for %v", tc.err)
		}
	})

	t.Run("TestAuthFailureIsGeneric", func(t *testing.T) {
		timer := test.NewTestTimer("Auth Failure Is Generic")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Auth Failure Is Generic", Duration: duration, Passed: true})
		}()

		body := errorStatus(t, utils.AuthenticationError())
		assert.Equal(t, "Invalid credentials", body.Message)
	})

	t.Run("TestUpstreamDetailNotLeaked", func(t *testing.T) {
		timer := test.NewTestTimer("Upstream Detail Not Leaked")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Upstream Detail Not Leaked", Duration: duration, Passed: true})
		}()

		body := errorStatus(t, utils.UpstreamError(errors.New("mongodb://secret-host:27017 refused")))
		assert.NotContains(t, body.Message, "secret-host")
	})

	t.Run("TestDuplicateKeyBecomesConflict", func(t *testing.T) {
		timer := test.NewTestTimer("Duplicate Key Becomes Conflict")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Duplicate Key Becomes Conflict", Duration: duration, Passed: true})
		}()

		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		appErr := utils.WrapStoreError(dup, "A student with this email or roll number already exists")
		assert.Equal(t, utils.KindConflict, appErr.Kind)

		other := utils.WrapStoreError(errors.New("network timeout"), "unused")
		assert.Equal(t, utils.KindUpstream, other.Kind)
	})

	t.Run("TestUnclassifiedErrorTreatedAsUpstream", func(t *testing.T) {
		timer := test.NewTestTimer("Unclassified Error Treated As Upstream")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Unclassified Error Treated As Upstream", Duration: duration, Passed: true})
		}()

		body := errorStatus(t, errors.New("some raw error"))
		assert.Equal(t, 502, body.Status)
		assert.Equal(t, "UPSTREAM_ERROR", body.Code)
	})
}
