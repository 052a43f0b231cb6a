package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"

	PackageName string = "package"
	FileName    string = "file"
)

type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	err := h.Handler.Handle(ctx, r)
	if err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v[:len(v):len(v)], attr)

		return context.WithValue(parent, slogFields, v)
	}

	v := []slog.Attr{attr}

	return context.WithValue(parent, slogFields, v)
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// New returns a text logger writing to w through a ContextHandler. A nil
// writer discards everything.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(ContextHandler{slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})})
}
