package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/minions-03/billing-system/internal/metrics"
)

// MetricsInterceptor returns a Connect interceptor that counts RPCs and
// observes their latency, labelled by procedure and result code.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.ObserveRPC(req.Spec().Procedure, code, time.Since(start))
			return resp, err
		}
	}
}
