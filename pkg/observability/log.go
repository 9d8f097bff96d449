package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing structured log lines.
// Start events and cache traffic are logged at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks { return &LogHooks{Logger: l} }

// Register installs h as the pipeline, cache and HTTP hooks.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnLayoutStart(context.Context) {
	h.Logger.Debug("layout started")
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, orientation string, items int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("layout failed", "err", err, "duration", d)
		return
	}
	h.Logger.Debug("layout complete", "orientation", orientation, "items", items, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Error("render failed", "formats", formats, "err", err)
		return
	}
	h.Logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, format string) {
	h.Logger.Debug("cache hit", "format", format)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, format string) {
	h.Logger.Debug("cache miss", "format", format)
}

func (h *LogHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.Logger.Debug("cache set", "format", format, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
