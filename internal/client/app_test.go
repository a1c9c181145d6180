package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/mock"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/tui"
	"github.com/MKhiriev/go-exam-watermark/models"
)

type fakeUI struct {
	got    models.SessionInfo
	result tui.Result
	err    error
}

func (f *fakeUI) Run(_ context.Context, info models.SessionInfo) (tui.Result, error) {
	f.got = info
	return f.result, f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientExamService, *mock.MockClientAutosaveJob) {
	t.Helper()
	ctrl := gomock.NewController(t)
	exam := mock.NewMockClientExamService(ctrl)
	job := mock.NewMockClientAutosaveJob(ctrl)

	services := &service.ClientServices{ExamService: exam, AutosaveJob: job, Answers: service.NewAnswerBuffer()}
	app, err := NewApp(services, ui, &config.ClientConfig{}, logger.Nop())
	require.NoError(t, err)

	return app, exam, job
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, &config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_Submitted(t *testing.T) {
	ui := &fakeUI{result: tui.Result{Submitted: true}}
	app, exam, job := newTestApp(t, ui)
	ctx := context.Background()

	info := models.SessionInfo{ExamID: 7, UserID: 3, Token: "a1b2c3d4e5f60708"}
	gomock.InOrder(
		exam.EXPECT().Begin(ctx).Return(info, nil),
		job.EXPECT().Start(ctx, gomock.Any()),
		job.EXPECT().Stop(),
	)

	require.NoError(t, app.run(ctx))
	assert.Equal(t, info, ui.got)
}

func TestApp_Run_QuitFlushesAnswers(t *testing.T) {
	ui := &fakeUI{err: tui.ErrUserQuit}
	app, exam, job := newTestApp(t, ui)
	ctx := context.Background()

	gomock.InOrder(
		exam.EXPECT().Begin(ctx).Return(models.SessionInfo{ExamID: 7}, nil),
		job.EXPECT().Start(ctx, gomock.Any()),
		job.EXPECT().Stop(),
		job.EXPECT().Flush(gomock.Any()).Return(errors.New("offline")),
	)

	assert.NoError(t, app.run(ctx))
}

func TestApp_Run_BeginFails(t *testing.T) {
	app, exam, _ := newTestApp(t, &fakeUI{})
	ctx := context.Background()

	exam.EXPECT().Begin(ctx).Return(models.SessionInfo{}, service.ErrServerUnavailable)

	err := app.run(ctx)
	assert.ErrorIs(t, err, service.ErrServerUnavailable)
}

func TestApp_Run_UIError(t *testing.T) {
	uiErr := errors.New("terminal gone")
	app, exam, job := newTestApp(t, &fakeUI{err: uiErr})
	ctx := context.Background()

	exam.EXPECT().Begin(ctx).Return(models.SessionInfo{}, nil)
	job.EXPECT().Start(ctx, gomock.Any())
	job.EXPECT().Stop()
	job.EXPECT().Flush(gomock.Any()).Return(nil)

	assert.ErrorIs(t, app.run(ctx), uiErr)
}
