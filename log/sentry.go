package log

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

// SentryDefer .
func SentryDefer() {
	if sentryDSN == "" {
		return
	}
	defer sentry.Flush(2 * time.Second)
	if r := recover(); r != nil {
		sentry.CaptureMessage(fmt.Sprintf("%+v: %s", r, debug.Stack()))
		panic(r)
	}
}

func tracingInfo(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID := ctx.Value(types.TracingID); traceID != nil {
		if tid, ok := traceID.(string); ok {
			return tid
		}
	}
	return ""
}

func reportToSentry(ctx context.Context, level sentry.Level, err error, format string, args ...any) {
	if sentryDSN == "" {
		return
	}
	defer sentry.Flush(2 * time.Second)
	event, extraDetails := errors.BuildSentryReport(err)
	for k, v := range extraDetails {
		event.Extra[k] = v
	}
	event.Level = level

	if msg := fmt.Sprintf(format, args...); msg != "" {
		event.Tags["message"] = msg
	}

	if tracing := tracingInfo(ctx); tracing != "" {
		event.Tags["tracing"] = tracing
	}

	if res := string(*sentry.CaptureEvent(event)); res != "" {
		Infof(ctx, "Report to Sentry ID: %s", res)
	}
}
