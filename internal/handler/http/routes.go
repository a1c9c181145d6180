package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-exam-watermark/models"
)

// Init builds the router. Exam page calls need a student or observer
// bearer token, observer calls need the observer role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/watermark", func(r chi.Router) {
		r.Post("/mark", h.mark)
		r.Post("/clean", h.clean)
		r.Post("/scan", h.scan)
		r.Get("/pattern.svg", h.pattern)
	})

	// routes used by exam pages
	router.Group(func(r chi.Router) {
		r.Use(h.auth, requireRole(models.RoleStudent, observerRole))

		r.Get("/api/exams/{examID}/session", h.session)
		r.Post("/api/attempts", h.startAttempt)
		r.Post("/api/attempts/{attemptID}/finish", h.finishAttempt)
		r.Post("/api/attempts/{attemptID}/snapshots", h.saveSnapshot)
	})

	// routes for observers
	router.Group(func(r chi.Router) {
		r.Use(h.auth, requireRole(observerRole))

		r.Delete("/api/attempts/{attemptID}", h.deleteAttempt)
		r.Put("/api/exams/{examID}/settings", h.setExamSettings)
		r.Get("/api/exams/{examID}/settings", h.getExamSettings)
		r.Get("/api/exams/{examID}/report", h.examReport)
		r.Get("/api/exams/{examID}/attempts/{attemptID}/report", h.attemptReport)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
