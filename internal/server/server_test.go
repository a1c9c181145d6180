package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/handler"
	myHTTP "github.com/MKhiriev/go-exam-watermark/internal/handler/http"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/mock"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
)

type fakeWorkers struct {
	started chan context.Context
	stopped chan struct{}
}

func newFakeWorkers() *fakeWorkers {
	return &fakeWorkers{started: make(chan context.Context, 1), stopped: make(chan struct{}, 1)}
}

func (f *fakeWorkers) Start(ctx context.Context) { f.started <- ctx }
func (f *fakeWorkers) Stop()                    { f.stopped <- struct{}{} }

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}

	s, err := NewServer(handlers, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_RunServesUntilContextDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("9.9.9").AnyTimes()

	addr := freeAddress(t)
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())}
	workers := newFakeWorkers()

	s, err := NewServer(handlers, workers, config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	select {
	case <-workers.started:
	case <-time.After(time.Second):
		t.Fatal("workers were not started")
	}

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
	select {
	case <-workers.stopped:
	default:
		t.Fatal("workers were not stopped")
	}
}
