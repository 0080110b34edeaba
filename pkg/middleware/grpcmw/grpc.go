// Package grpcmw provides gRPC server interceptors that write one log
// record per RPC: full method name, status code, and elapsed time.
// Failed calls log with the ERROR tag and carry the handler's error text;
// successful calls log at info level.
package grpcmw

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/acomms-io/modemlog"
)

// CallLogger is the subset of the log API the interceptors need.
// *modemlog.Logger implements it.
type CallLogger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any) error
}

// UnaryServerInterceptor logs one record per unary RPC. A nil logger
// falls back to the package default logger.
func UnaryServerInterceptor(logger CallLogger, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newOptions(opts...)

	if logger == nil {
		logger = modemlog.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if cfg.skipped(info.FullMethod) {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		logCall(logger, cfg, info.FullMethod, time.Since(start), err)

		return resp, err
	}
}

// StreamServerInterceptor logs one record per streaming RPC, written when
// the stream handler returns. A nil logger falls back to the package
// default logger.
func StreamServerInterceptor(logger CallLogger, opts ...Option) grpc.StreamServerInterceptor {
	cfg := newOptions(opts...)

	if logger == nil {
		logger = modemlog.Default()
	}

	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if cfg.skipped(info.FullMethod) {
			return handler(srv, stream)
		}

		start := time.Now()
		err := handler(srv, stream)

		logCall(logger, cfg, info.FullMethod, time.Since(start), err)

		return err
	}
}

// logCall converts err to a gRPC status code and records the call. The
// handler's error propagates to the caller untouched; only the record's
// sentinel is discarded.
func logCall(logger CallLogger, cfg options, method string, elapsed time.Duration, err error) {
	code := status.Code(err)

	if err != nil {
		_ = logger.Errorf("RPC %s %s (%v): %v", method, code, elapsed, err)

		return
	}

	if cfg.errorsOnly {
		return
	}

	logger.Infof("RPC %s %s (%v)", method, code, elapsed)
}
