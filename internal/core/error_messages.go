package core

// error_messages.go maps errors to user-friendly messages with codes for
// support reference.
//
// Sentinel errors are matched first with errors.Is; anything else is
// matched by message pattern.
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Invalid reach: Reach must be at least 1
//	         Action: Enter the number of views (1 or more)
//	         Sentinel: ErrInvalidReach
//
//	VAL002 - Rating out of range: Ratings must be between 1 and 5
//	         Action: Choose a value from 1 to 5 for every rating
//	         Sentinel: ErrRatingOutOfRange
//
//	VAL003 - Invalid number: A numeric field could not be read
//	         Action: Enter whole numbers without separators or units
//	         Patterns: "invalid number"
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - Nothing to export: No saved data
//	         Action: Save at least one analysis first
//	         Sentinel: ErrNoRecords
//
//	EXP002 - Invalid CSV: File is not a valid report
//	         Action: Use a file exported by this system
//	         Patterns: "invalid csv"
//
// # Session Errors (SES001-SES099)
//
//	SES001 - Session expired: Session not found
//	         Action: Reload the page to start a new session
//	         Sentinel: ErrSessionNotFound
//
//	SES002 - Form expired: The form token is missing or invalid
//	         Action: Reload the page and submit again
//	         Patterns: "csrf"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled
//	         Patterns: "context canceled"
//
//	REQ002 - Request timeout
//	         Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Anything not matched above

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage is the user-facing rendition of an error.
type UserMessage struct {
	Message string // What went wrong, in plain words
	Action  string // What the user can do about it
	Code    string // Support reference code
}

type sentinelMessage struct {
	err error
	msg UserMessage
}

type errorPattern struct {
	pattern string // Lower-case substring to match
	msg     UserMessage
}

var sentinelMessages = []sentinelMessage{
	{
		err: ErrInvalidReach,
		msg: UserMessage{
			Message: "Reach must be at least 1",
			Action:  "Enter the number of views (1 or more)",
			Code:    "VAL001",
		},
	},
	{
		err: ErrRatingOutOfRange,
		msg: UserMessage{
			Message: "Ratings must be between 1 and 5",
			Action:  "Choose a value from 1 to 5 for every rating",
			Code:    "VAL002",
		},
	},
	{
		err: ErrNoRecords,
		msg: UserMessage{
			Message: "No saved data",
			Action:  "Save at least one analysis first",
			Code:    "EXP001",
		},
	},
	{
		err: ErrSessionNotFound,
		msg: UserMessage{
			Message: "Session not found",
			Action:  "Reload the page to start a new session",
			Code:    "SES001",
		},
	},
}

// errorPatterns is evaluated in order; specific patterns come first.
var errorPatterns = []errorPattern{
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "A numeric field could not be read",
			Action:  "Enter whole numbers without separators or units",
			Code:    "VAL003",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid report",
			Action:  "Use a file exported by this system",
			Code:    "EXP002",
		},
	},
	{
		pattern: "csrf",
		msg: UserMessage{
			Message: "The form has expired",
			Action:  "Reload the page and submit again",
			Code:    "SES002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Sentinel errors win over message patterns. Returns the zero UserMessage
// for a nil error and the ERR000 fallback when nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// MessageCodes returns the support code of every user message, fallback last.
func MessageCodes() []string {
	codes := make([]string, 0, len(sentinelMessages)+len(errorPatterns)+1)
	for _, sm := range sentinelMessages {
		codes = append(codes, sm.msg.Code)
	}
	for _, ep := range errorPatterns {
		codes = append(codes, ep.msg.Code)
	}
	return append(codes, defaultMessage.Code)
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

// IsUserFacing reports whether an error maps to a specific message rather
// than the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
