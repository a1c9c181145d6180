// Package server runs the watermark HTTP server and its background workers
// until SIGINT, SIGTERM or SIGQUIT, then shuts both down gracefully.
package server
