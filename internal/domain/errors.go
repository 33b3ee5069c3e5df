// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackNotFoundMessage is shown when the service rejects a search without
// saying why.
const FallbackNotFoundMessage = "Música não encontrada. Tente outra!"

// Common domain errors.
var (
	ErrEmptyTerm          = errors.New("empty search term")
	ErrNetworkFailure     = errors.New("network failure")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ServiceError is a non-2xx answer from the recommendation service. Err
// classifies the failure when the status says more than the message.
type ServiceError struct {
	Status  int
	Message string
	Err     error
}

// NewServiceError creates a ServiceError, substituting the fallback text when
// the service sent no message.
func NewServiceError(status int, message string) *ServiceError {
	if strings.TrimSpace(message) == "" {
		message = FallbackNotFoundMessage
	}

	return &ServiceError{Status: status, Message: message}
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the service answered 404.
func (e *ServiceError) IsNotFound() bool {
	return e.Status == 404
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// GetErrorInfo analyzes an error and returns user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		info := ErrorInfo{Message: serviceErr.Message, ShowDetails: verbose}
		switch {
		case serviceErr.IsNotFound():
			info.Suggestions = []string{"Check the spelling or pick a title from 'soundmatch songs --filter'"}
		case errors.Is(serviceErr, ErrServiceUnavailable):
			info.Suggestions = []string{"The service is temporarily down, try again later"}
		default:
			info.Suggestions = []string{"Try again in a few moments"}
		}

		return info
	}

	switch {
	case errors.Is(err, ErrEmptyTerm):
		return ErrorInfo{
			Message:     "Nothing to search for",
			Suggestions: []string{"Type a song title"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrMalformedResponse):
		return ErrorInfo{
			Message:     "The service sent an unexpected answer",
			Suggestions: []string{"Try again in a few moments"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrNetworkFailure):
		return ErrorInfo{
			Message:     "Network connection failed",
			Suggestions: []string{"Check your internet connection", "Try again in a few moments"},
			ShowDetails: verbose,
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display on the console.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil && err.Error() != info.Message {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}

// ExitError carries a process exit code alongside the message shown to the user.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
