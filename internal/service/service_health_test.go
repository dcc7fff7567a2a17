package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/mock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	svc := NewHealthService(pinger, logger.Nop())

	pinger.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Check(context.Background()))

	down := errors.New("connection refused")
	pinger.EXPECT().Ping(gomock.Any()).Return(down)
	assert.ErrorIs(t, svc.Check(context.Background()), down)
}
