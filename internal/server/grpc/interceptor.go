package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/tidemill/haulbatch/internal/common"
)

type ctxKey string

const callerKey ctxKey = "caller"

// callerInterceptor pulls the caller address out of the request metadata and
// stores it on the context. Ops that need a caller reject requests without one
// in their handlers, so nothing is enforced here.
func (s *GRPCServer) callerInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.CallerHeaderName)
		if len(values) > 0 {
			ctx = context.WithValue(ctx, callerKey, values[0])
		}
	}

	return handler(ctx, req)
}

// callerFromContext returns the caller address set by the interceptor, or ""
// if the request did not carry one.
func callerFromContext(ctx context.Context) string {
	caller, _ := ctx.Value(callerKey).(string)
	return caller
}
