// Package service defines the domain model of the caseboard backend
// together with the storage, external API and service interfaces each
// resource is built from. The concrete implementations live under
// service/core.
package service

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated user attached to the request context by
// the session middleware.
type User struct {
	// id of the user.
	ID uuid.UUID `json:"-"`
	// username is the short login name, used in responses.
	Username string `json:"username"`
	// name is the display name of the user.
	Name string `json:"-"`
	// expiry is when the session expires.
	Expiry time.Time `json:"-"`
}

// Permission is a single grant on an access controlled entity.
type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionDelete Permission = "delete"
)

// AllPermissions is the full grant set given to the creator of an
// access controlled entity.
var AllPermissions = []Permission{PermissionRead, PermissionWrite, PermissionDelete}
