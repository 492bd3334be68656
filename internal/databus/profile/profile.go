// Package profile keeps participant snapshots current from the profile change
// topic.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/doodle-sync/internal/config"
	"github.com/s21platform/doodle-sync/internal/model"
)

type Handler struct {
	engine ProfileApplier
}

func New(engine ProfileApplier) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ProfileUpdate")

	var msg model.ProfileUpdate
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal profile update: %v", err))
		return fmt.Errorf("failed to unmarshal profile update: %w", err)
	}

	if msg.UserID == uuid.Nil {
		logger.Error("profile update without user uuid")
		return errors.New("profile update without user uuid")
	}

	h.engine.ApplyProfileUpdate(msg.User())
	return nil
}

// ConsumerGroupID is unique per session user so every running client sees
// every update.
func ConsumerGroupID(cfg *config.Config) string {
	return fmt.Sprintf("%s-profile-%s", cfg.Service.Name, cfg.Session.UserID)
}
