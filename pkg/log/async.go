package log

import (
	"context"
	"log/slog"
)

// AsyncHandler buffers records in a channel and emits them from a single
// background goroutine, so callers on the hot path never block on the
// underlying sink. Records are dropped (not blocked on) once the buffer is
// full, favoring producer throughput over log completeness.
type AsyncHandler struct {
	next    slog.Handler
	records chan asyncRecord
}

type asyncRecord struct {
	ctx context.Context
	r   slog.Record
}

// NewAsyncHandler wraps next with a buffered async dispatch of size buf.
func NewAsyncHandler(next slog.Handler, buf int) *AsyncHandler {
	h := &AsyncHandler{
		next:    next,
		records: make(chan asyncRecord, buf),
	}
	go h.run()
	return h
}

func (h *AsyncHandler) run() {
	for rec := range h.records {
		_ = h.next.Handle(rec.ctx, rec.r)
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	select {
	case h.records <- asyncRecord{ctx: ctx, r: r.Clone()}:
	default:
		// Buffer full: drop rather than block the caller.
	}
	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), records: h.records}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), records: h.records}
}
