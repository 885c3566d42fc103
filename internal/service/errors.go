package service

import (
	"errors"
	"fmt"
)

// Code classifies a service failure so transport layers can map it to a
// status without inspecting error strings.
type Code string

const (
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeBudgetLocked     Code = "BUDGET_LOCKED"
	CodeFamilyMismatch   Code = "FAMILY_MISMATCH"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeInternal         Code = "INTERNAL"
)

// Error is the failure type returned by all service methods.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the service code from err, defaulting to INTERNAL for
// errors that did not originate in this package.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}

func errUnauthenticated(msg string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: msg}
}

func errPermissionDenied(format string, args ...any) *Error {
	return &Error{Code: CodePermissionDenied, Message: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func errBudgetLocked(budgetID string) *Error {
	return &Error{Code: CodeBudgetLocked, Message: fmt.Sprintf("budget %s is locked", budgetID)}
}

func errFamilyMismatch(budgetID, familyID string) *Error {
	return &Error{Code: CodeFamilyMismatch, Message: fmt.Sprintf("budget %s does not belong to family %s", budgetID, familyID)}
}

func errInvalidArgument(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func errInternal(msg string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Cause: cause}
}
