// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingIdentity is returned when a route behind auth finds no user
	// id in the request context.
	ErrMissingIdentity = errors.New("request has no authenticated user")

	// ErrForbiddenRole is returned when the token role may not call the
	// route.
	ErrForbiddenRole = errors.New("role is not allowed to access this resource")

	// ErrInvalidPathParam is returned when an id in the URL is not a
	// positive integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
