package auth

import (
	"testing"
	"time"

	"Campus-Portal-Backend/src/utils"
	"Campus-Portal-Backend/test"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Password Hashing Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestHashThenVerify", func(t *testing.T) {
		timer := test.NewTestTimer("Hash Then Verify")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Hash Then Verify", Duration: duration, Passed: true})
		}()

		hash, err := utils.HashPassword("correct horse battery staple")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash)

		assert.True(t, utils.CheckPassword("correct horse battery staple", hash))
	})

	t.Run("TestWrongPlaintextFails", func(t *testing.T) {
		timer := test.NewTestTimer("Wrong Plaintext Fails")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Wrong Plaintext Fails", Duration: duration, Passed: true})
		}()

		hash, err := utils.HashPassword("password123")
		assert.NoError(t, err)

		assert.False(t, utils.CheckPassword("password124", hash))
		assert.False(t, utils.CheckPassword("", hash))
		assert.False(t, utils.CheckPassword("Password123", hash))
	})

	t.Run("TestHashesAreSalted", func(t *testing.T) {
		timer := test.NewTestTimer("Hashes Are Salted")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Hashes Are Salted", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Hashes Are Salted", duration, 2*time.Second)
		}()

		first, err := utils.HashPassword("same plaintext")
		assert.NoError(t, err)
		second, err := utils.HashPassword("same plaintext")
		assert.NoError(t, err)

		// same plaintext, different salt, both verify
		assert.NotEqual(t, first, second)
		assert.True(t, utils.CheckPassword("same plaintext", first))
		assert.True(t, utils.CheckPassword("same plaintext", second))
	})
}
