package policy

import (
	"log/slog"

	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.DenialHandler = (*LogDenialHandler)(nil)
var _ ports.DenialHandler = (*NopDenialHandler)(nil)

// LogDenialHandler logs denials with slog. A nil Logger uses slog.Default().
type LogDenialHandler struct {
	Logger *slog.Logger
}

func (h *LogDenialHandler) OnDenial(method string, reason string) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("permission denied", "method", method, "reason", reason)
}

// NopDenialHandler does nothing.
type NopDenialHandler struct{}

func (h *NopDenialHandler) OnDenial(method string, reason string) {}
