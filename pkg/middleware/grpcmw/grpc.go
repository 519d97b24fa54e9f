package grpcmw

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/xiaojitui007/asynclog/pkg/log"
)

// UnaryServerInterceptor logs every unary RPC through the given logger.
// Failed RPCs log at the Error severity, successful ones at Info.
func UnaryServerInterceptor(logger *log.Logger, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		logCall(ctx, logger, cfg, info.FullMethod, time.Since(start), err)

		return resp, err
	}
}

// StreamServerInterceptor logs every streaming RPC through the given logger.
func StreamServerInterceptor(logger *log.Logger, opts ...Option) grpc.StreamServerInterceptor {
	cfg := actualOptions(opts...)

	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()

		err := handler(srv, stream)

		logCall(stream.Context(), logger, cfg, info.FullMethod, time.Since(start), err)

		return err
	}
}

func logCall(ctx context.Context, logger *log.Logger, cfg options, method string, duration time.Duration, err error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "rpc %s code=%s duration=%s", method, status.Code(err), duration)

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(cfg.traceKey); len(values) > 0 {
			fmt.Fprintf(&sb, " trace_id=%s", values[0])
		}

		if values := md.Get(cfg.requestKey); len(values) > 0 {
			fmt.Fprintf(&sb, " request_id=%s", values[0])
		}
	}

	if status.Code(err) == codes.OK {
		logger.Info(sb.String())

		return
	}

	fmt.Fprintf(&sb, " error=%q", err)
	logger.Error(sb.String())
}
