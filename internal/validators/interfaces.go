// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks attempts and snapshots before they reach the
// store. A Validator can be limited to a subset of fields by name, e.g.
// only FieldToken and FieldState when an attempt is closed.
package validators

import "context"

// Validator validates v. When fields is empty the type's default field set
// is checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
