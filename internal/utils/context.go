// Package utils holds small helpers shared by the server and the client:
// typed context keys, keyed hashing, JSON responses, the resty client
// wrapper, JWT handling and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-exam-watermark/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id as int64.
	UserIDCtxKey = contextKey("userID")

	// RoleCtxKey stores the authenticated [models.Role].
	RoleCtxKey = contextKey("role")
)

// GetUserIDFromContext returns the user id put into ctx by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext returns the role put into ctx by the auth middleware.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// WithIdentity returns a copy of ctx carrying userID and role.
func WithIdentity(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
