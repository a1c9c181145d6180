// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the exam client runtime.
//
// It registers the attempt with the server, keeps answers autosaved in the
// background and runs the terminal exam screen until the attempt is
// submitted, abandoned or left.
package client
