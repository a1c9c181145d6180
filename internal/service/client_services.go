package service

import (
	"github.com/MKhiriev/go-exam-watermark/internal/adapter"
	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
)

type ClientServices struct {
	ExamService ClientExamService
	AutosaveJob ClientAutosaveJob
	Answers     *AnswerBuffer
}

func NewClientServices(serverAdapter adapter.ServerAdapter, exam config.Exam, logger *logger.Logger) *ClientServices {
	examSvc := NewClientExamService(serverAdapter, exam, logger)
	answers := NewAnswerBuffer()

	return &ClientServices{
		ExamService: examSvc,
		AutosaveJob: NewClientAutosaveJob(examSvc, answers, logger),
		Answers:     answers,
	}
}
