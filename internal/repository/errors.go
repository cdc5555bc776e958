// Package repository holds the MySQL backed stores of the service.  At
// the moment that is the member table the SQL credential verifier reads.
package repository

import "errors"

// ErrMemberNotFound is returned when no member row matches the lookup.
var ErrMemberNotFound = errors.New("member not found")

// ErrMemberExists is returned when inserting an email that is already registered.
var ErrMemberExists = errors.New("member already exists")
