package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils/logutil"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessions SessionStore
	logger   logger.Interface
}

func NewLogoutUseCase(sessions SessionStore, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessions.Delete(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", logutil.TruncateForLog(cmd.SessionID, sessionIDLogPrefix))
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out successfully", "session_id", logutil.TruncateForLog(cmd.SessionID, sessionIDLogPrefix))

	return nil
}
