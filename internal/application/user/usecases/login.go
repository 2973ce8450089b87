package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/user"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/session"
	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
	"github.com/contracthub-inc/contracthub/internal/shared/utils/logutil"
)

const (
	sessionIDLength    = 24
	sessionIDLogPrefix = 8
)

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresAt   time.Time
	CSRFToken   string
	SessionID   string
}

// LoginUseCase checks a password and opens a server-side session. The
// session carries the CSRF token every later mutating request must echo.
type LoginUseCase struct {
	userRepo       user.Repository
	sessions       SessionStore
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessions SessionStore,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		sessions:       sessions,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			if guard, ok := uc.passwordHasher.(timingGuard); ok {
				guard.Burn(cmd.Password)
			}
			uc.logger.Infow("login attempt for unknown email", "email", utils.MaskEmail(cmd.Email), "ip", cmd.IPAddress)
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("login attempt with wrong password", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	sessionID, err := id.Generate(sessionIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}
	csrfToken, err := utils.GenerateCSRFToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSRF token: %w", err)
	}

	sess := &session.Session{
		ID:        sessionID,
		UserID:    existingUser.ID(),
		Role:      existingUser.Role(),
		CSRFToken: csrfToken,
		CreatedAt: biztime.NowUTC(),
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		uc.logger.Errorw("failed to create session", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, expiresAt, err := uc.tokens.Generate(existingUser.ID(), sessionID, existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existingUser.ID(), "error", err)
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID(), "session_id", logutil.TruncateForLog(sessionID, sessionIDLogPrefix))

	return &LoginResult{
		User:        existingUser,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		CSRFToken:   csrfToken,
		SessionID:   sessionID,
	}, nil
}
