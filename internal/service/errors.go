package service

import "fmt"

// ValidationError reports malformed or missing input: absent required fields,
// bad email formats, unknown enum values.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports that a targeted or referenced entity does not exist.
// Resource is the display name, e.g. "User" or "Document type".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError reports a uniqueness violation (email, username, doctype name)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ReferentialBlockError reports a delete rejected because other rows still
// reference the target entity
type ReferentialBlockError struct {
	Message string
}

func (e *ReferentialBlockError) Error() string {
	return e.Message
}
