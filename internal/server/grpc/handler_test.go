package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/tidemill/haulbatch/internal/common"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid parameter", common.ErrInvalidParameter, codes.InvalidArgument},
		{"invalid authorization", common.ErrInvalidAuthorization, codes.Unauthenticated},
		{"unauthorized", common.ErrUnauthorized, codes.PermissionDenied},
		{"capacity", common.ErrCapacityExceeded, codes.ResourceExhausted},
		{"conflicting direction", common.ErrConflictingDirection, codes.FailedPrecondition},
		{"insufficient balance", common.ErrInsufficientBalance, codes.FailedPrecondition},
		{"empty batch", common.ErrEmptyBatch, codes.FailedPrecondition},
		{"settlement mismatch", common.ErrSettlementMismatch, codes.Aborted},
		{"not found", common.ErrNotFound, codes.NotFound},
		{"wrapped sentinel", fmt.Errorf("context: %w", common.ErrCapacityExceeded), codes.ResourceExhausted},
		{"unknown", errors.New("pg connection lost"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := status.Code(statusFromError(tt.err))
			if got != tt.want {
				t.Errorf("statusFromError(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestStatusFromErrorHidesInternalDetail(t *testing.T) {
	st, ok := status.FromError(statusFromError(errors.New("password=hunter2 dsn leak")))
	if !ok {
		t.Fatal("not a status error")
	}
	if st.Message() != "internal error" {
		t.Errorf("message = %q, want opaque internal error", st.Message())
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := parseAmount("amount", "123"); err != nil {
		t.Errorf("parseAmount valid input error: %v", err)
	}
	for _, bad := range []string{"", "12.5", "abc"} {
		if _, err := parseAmount("amount", bad); !errors.Is(err, common.ErrInvalidParameter) {
			t.Errorf("parseAmount(%q) error = %v, want ErrInvalidParameter", bad, err)
		}
	}
}

func TestCallerInterceptor(t *testing.T) {
	s := &GRPCServer{}

	md := metadata.New(map[string]string{common.CallerHeaderName: "op1"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var got string
	_, err := s.callerInterceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		got = callerFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if got != "op1" {
		t.Errorf("caller = %q, want op1", got)
	}
}

func TestCallerInterceptorNoMetadata(t *testing.T) {
	s := &GRPCServer{}

	var got string
	_, err := s.callerInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		got = callerFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if got != "" {
		t.Errorf("caller = %q, want empty", got)
	}
}
