package domain

import (
	"errors"
	"fmt"
	"os"
)

const (
	RoleUser = "user"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	// Error taxonomy. Specific errors wrap one of these so handlers can
	// dispatch with errors.Is without inspecting text.
	ErrInvalidInput   = errors.New("invalid input")
	ErrGuardViolation = errors.New("transition not allowed")

	ErrParseUUID          = errors.New("failed to parse UUID")
	ErrUnauthorizedAccess = errors.New("unauthorized access to resource")
	ErrUserNotAllowed     = errors.New("user not allowed")
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")

	ErrUnknownStrategy = fmt.Errorf("%w: unknown grouping strategy", ErrInvalidInput)
)
