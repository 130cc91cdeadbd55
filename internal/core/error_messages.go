// Package core provides the conversion service behind the font generator.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. Error codes are grouped by category:
//
// # Input Errors (INP001-INP099)
//
//	INP001 - Empty input: No text was entered
//	         Action: Type some text to convert
//	         Matches: ErrEmptyInput
//
//	INP002 - Input too long: Text exceeds the maximum length
//	         Action: Shorten the text and try again
//	         Matches: ErrInputTooLong
//
// # Style Errors (STY001-STY099)
//
//	STY001 - Unknown style: The requested style does not exist
//	         Action: Pick a listed style (GET /api/styles or fontgen list)
//	         Matches: style.ErrUnknownStyle
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Malformed request: The request could not be read
//	         Action: Send a form field "text" or a JSON body {"text": "..."}
//	         Patterns: "invalid request", "request body too large"
//
//	REQ002 - Request cancelled: The request was cancelled
//	         Action: Please try again
//	         Matches: context.Canceled
//
//	REQ003 - Request timeout: The request timed out
//	         Action: Please try again with shorter text
//	         Matches: context.DeadlineExceeded
//
// # Access Errors (AUTH001-AUTH002, RATE001-RATE002)
//
//	AUTH001 - Unauthorized: No API key was sent
//	          Action: Send a valid X-API-Key header
//	          Matches: ErrMissingAPIKey
//
//	AUTH002 - Forbidden: The API key is not valid
//	          Action: Send a valid X-API-Key header
//	          Matches: ErrInvalidAPIKey
//
//	RATE001 - Rate limited: Too many requests
//	          Action: Please wait a moment before trying again
//	          Matches: ErrRateLimited
//
//	RATE002 - Busy: Too many conversions in flight
//	          Action: Please try again in a few seconds
//	          Matches: ErrTooManyConversions
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check the application logs for the
// original technical error when users report ERR000.
//
// # Matching
//
// Sentinel errors are matched with errors.Is, so wrapped errors resolve to
// their code. Patterns are matched case-insensitively with strings.Contains.
// The first match wins.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/fancyfont/internal/style"
)

// Access errors raised by the HTTP middleware.
var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrRateLimited   = errors.New("rate limit exceeded")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern maps a sentinel error or a message fragment to a user message.
// Exactly one of target and pattern is set.
type errorPattern struct {
	target  error
	pattern string
	msg     UserMessage
}

func (ep errorPattern) matches(err error, lower string) bool {
	if ep.target != nil {
		return errors.Is(err, ep.target)
	}
	return strings.Contains(lower, ep.pattern)
}

// errorPatterns is searched in order; sentinels come before fragments.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Input Errors (INP001-INP002)
	// =========================================================================
	{
		target: ErrEmptyInput,
		msg: UserMessage{
			Message: "No text was entered",
			Action:  "Type some text to convert",
			Code:    "INP001",
		},
	},
	{
		target: ErrInputTooLong,
		msg: UserMessage{
			Message: "Text exceeds the maximum length",
			Action:  "Shorten the text and try again",
			Code:    "INP002",
		},
	},

	// =========================================================================
	// Style Errors (STY001)
	// =========================================================================
	{
		target: style.ErrUnknownStyle,
		msg: UserMessage{
			Message: "The requested style does not exist",
			Action:  "Pick a listed style (GET /api/styles or fontgen list)",
			Code:    "STY001",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ003)
	// =========================================================================
	{
		target: context.Canceled,
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		target: context.DeadlineExceeded,
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again with shorter text",
			Code:    "REQ003",
		},
	},
	{
		pattern: "invalid request",
		msg: UserMessage{
			Message: "The request could not be read",
			Action:  `Send a form field "text" or a JSON body {"text": "..."}`,
			Code:    "REQ001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The request could not be read",
			Action:  `Send a form field "text" or a JSON body {"text": "..."}`,
			Code:    "REQ001",
		},
	},

	// =========================================================================
	// Access Errors (AUTH001-AUTH002, RATE001-RATE002)
	// =========================================================================
	{
		target: ErrTooManyConversions,
		msg: UserMessage{
			Message: "The server is busy",
			Action:  "Please try again in a few seconds",
			Code:    "RATE002",
		},
	},
	{
		target: ErrMissingAPIKey,
		msg: UserMessage{
			Message: "No API key was sent",
			Action:  "Send a valid X-API-Key header",
			Code:    "AUTH001",
		},
	},
	{
		target: ErrInvalidAPIKey,
		msg: UserMessage{
			Message: "The API key is not valid",
			Action:  "Send a valid X-API-Key header",
			Code:    "AUTH002",
		},
	},
	{
		target: ErrRateLimited,
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If nothing matches, the generic ERR000 message is returned.
//
// Example:
//
//	_, err := svc.ConvertStyle(ctx, "nope", "abc")
//	msg := MapError(err)
//	// msg.Code == "STY001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	lower := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if ep.matches(err, lower) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
