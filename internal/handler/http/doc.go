// Package http serves the watermark REST API.
//
// Exam pages call the open routes to get their session, register attempts
// and push answer snapshots. Observer routes manage per-exam settings and
// build plagiarism reports; they require a bearer JWT with the observer
// role. Every request gets a trace id, an access log line and optional gzip.
package http
