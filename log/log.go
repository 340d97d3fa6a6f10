package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

var base = logrus.New()

// WithRequestID stores a request id that GetLogger attaches to every entry.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetLogger(ctx context.Context) *logrus.Entry {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return base.WithField("request_id", requestID)
	}
	return logrus.NewEntry(base)
}
