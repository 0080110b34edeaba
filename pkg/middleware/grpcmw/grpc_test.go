package grpcmw

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/acomms-io/modemlog"
)

func newCallLogger(t *testing.T) (*modemlog.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger, err := modemlog.New(modemlog.Config{Level: modemlog.InfoLevel, Output: buf})
	require.NoError(t, err)

	return logger, buf
}

func TestUnaryServerInterceptorLogsSuccess(t *testing.T) {
	t.Parallel()

	logger, buf := newCallLogger(t)
	interceptor := UnaryServerInterceptor(logger)

	handler := func(_ context.Context, _ any) (any, error) {
		return "ack", nil
	}

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/modem.Phy/Transmit"}, handler)
	require.NoError(t, err)
	require.Equal(t, "ack", resp)

	record := buf.String()
	assert.Contains(t, record, "|INFO|")
	assert.Contains(t, record, "RPC /modem.Phy/Transmit OK (")
}

func TestUnaryServerInterceptorLogsFailure(t *testing.T) {
	t.Parallel()

	logger, buf := newCallLogger(t)
	interceptor := UnaryServerInterceptor(logger)

	handlerErr := status.Error(codes.InvalidArgument, "bad frame length")
	handler := func(_ context.Context, _ any) (any, error) {
		return nil, handlerErr
	}

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/modem.Phy/Transmit"}, handler)
	require.ErrorIs(t, err, handlerErr)
	require.Nil(t, resp)

	record := buf.String()
	assert.Contains(t, record, "|ERROR|")
	assert.Contains(t, record, "RPC /modem.Phy/Transmit InvalidArgument (")
	assert.Contains(t, record, "bad frame length")
}

func TestUnaryServerInterceptorErrorsOnly(t *testing.T) {
	t.Parallel()

	logger, buf := newCallLogger(t)
	interceptor := UnaryServerInterceptor(logger, WithErrorsOnly(true))

	handler := func(_ context.Context, _ any) (any, error) {
		return "ack", nil
	}

	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/modem.Phy/Transmit"}, handler)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestUnaryServerInterceptorSkipMethods(t *testing.T) {
	t.Parallel()

	logger, buf := newCallLogger(t)
	interceptor := UnaryServerInterceptor(logger,
		WithSkipMethods("/grpc.health.v1.Health/Check"))

	handled := false
	handler := func(_ context.Context, _ any) (any, error) {
		handled = true

		return nil, nil
	}

	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, handler)
	require.NoError(t, err)

	assert.True(t, handled, "skipped methods still reach the handler")
	assert.Empty(t, buf.String())
}

func TestStreamServerInterceptorLogs(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		logger, buf := newCallLogger(t)
		interceptor := StreamServerInterceptor(logger)

		handler := func(_ any, _ grpc.ServerStream) error {
			return nil
		}

		err := interceptor(nil, nil,
			&grpc.StreamServerInfo{FullMethod: "/modem.Phy/Samples"}, handler)
		require.NoError(t, err)

		record := buf.String()
		assert.Contains(t, record, "|INFO|")
		assert.Contains(t, record, "RPC /modem.Phy/Samples OK (")
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		logger, buf := newCallLogger(t)
		interceptor := StreamServerInterceptor(logger)

		handlerErr := status.Error(codes.ResourceExhausted, "sample buffer overrun")
		handler := func(_ any, _ grpc.ServerStream) error {
			return handlerErr
		}

		err := interceptor(nil, nil,
			&grpc.StreamServerInfo{FullMethod: "/modem.Phy/Samples"}, handler)
		require.ErrorIs(t, err, handlerErr)

		record := buf.String()
		assert.Contains(t, record, "|ERROR|")
		assert.Contains(t, record, "ResourceExhausted")
	})
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	interceptor := UnaryServerInterceptor(nil, WithErrorsOnly(true))

	handler := func(_ context.Context, _ any) (any, error) {
		return nil, nil
	}

	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/modem.Phy/Transmit"}, handler)
	require.NoError(t, err)
}
