package utils

import (
	"errors"
	"log"
	"net/http"

	"Campus-Portal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorKind classifies a failure so clients can branch on it. Each kind maps
// to exactly one HTTP status and stable code.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindUpstream
)

// genericAuthMessage never reveals which part of the credential was wrong.
const genericAuthMessage = "Invalid credentials"

const genericUpstreamMessage = "Something went wrong, please try again later"

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func AuthenticationError() *AppError {
	return &AppError{Kind: KindAuthentication, Message: genericAuthMessage}
}

func AuthorizationError(msg string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// UpstreamError wraps a store failure. The cause is logged by HandleAppError
// but never serialized to the client.
func UpstreamError(err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: genericUpstreamMessage, Err: err}
}

// WrapStoreError converts raw driver errors coming out of a write path:
// duplicate-key violations become Conflict, everything else Upstream.
func WrapStoreError(err error, conflictMsg string) *AppError {
	if mongo.IsDuplicateKeyError(err) {
		return ConflictError(conflictMsg)
	}
	return UpstreamError(err)
}

func kindStatus(kind ErrorKind) (int, string) {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case KindAuthentication:
		return http.StatusUnauthorized, "AUTH_FAILED"
	case KindAuthorization:
		return http.StatusForbidden, "FORBIDDEN"
	case KindNotFound:
		return http.StatusNotFound, "NOT_FOUND"
	case KindConflict:
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusBadGateway, "UPSTREAM_ERROR"
	}
}

// HandleAppError maps a service error onto the standard error response.
// Unclassified errors are treated as upstream failures.
func HandleAppError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = UpstreamError(err)
	}

	status, code := kindStatus(appErr.Kind)
	if appErr.Kind == KindUpstream && appErr.Err != nil {
		log.Printf("❌ upstream error: %v", appErr.Err)
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: appErr.Message,
	})
}
