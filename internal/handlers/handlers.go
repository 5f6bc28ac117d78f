// Package handlers implements the HTTP surface. Every handler follows the
// same shape the UI layer does against the real thing: validate the raw
// fields, invoke exactly one simulator operation, apply the result to the
// state container, flush the snapshot, and reply with the envelope.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"paisa/internal/store"
)

// persist flushes the snapshot after a successful operation. A persistence
// failure is logged but does not fail the request: the operation itself
// already succeeded and the snapshot is only a convenience copy.
func persist(ctx context.Context, st *store.Container, logger *zap.Logger) {
	if err := st.Flush(ctx); err != nil {
		logger.Warn("snapshot flush failed", zap.Error(err))
	}
}
