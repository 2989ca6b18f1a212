// internal/app/core/errors.go
package core

import "fmt"

// NotFoundError reports that a referenced assessment or template is absent.
// The boundary maps it to a 404 response naming the missing id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Resource, e.ID)
}

// ValidationError reports a business-rule violation (non-published source
// template, incomplete scoring on a completed transition). The boundary maps
// it to a 400 response carrying the reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
