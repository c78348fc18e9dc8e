package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/usher/internal/adapters/telemetry"
	"go.trai.ch/usher/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func endedSpan(t *testing.T, bridge *telemetry.Bridge, fail bool) {
	t.Helper()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	if fail {
		span.RecordError(errors.New("boom"))
		span.SetStatus(codes.Error, "boom")
	}
	span.End()
}

func TestBridge_OnEnd_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	endedSpan(t, telemetry.NewBridge(mockLogger), false)
}

func TestBridge_OnEnd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("test-span: boom").Times(1)

	endedSpan(t, telemetry.NewBridge(mockLogger), true)
}

func TestBridge_NilLogger(t *testing.T) {
	endedSpan(t, telemetry.NewBridge(nil), false)
}

func TestSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	shutdown := telemetry.Setup(mockLogger)

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
