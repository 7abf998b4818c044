package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"vidgram/internal/core/domain"
	"vidgram/internal/core/ports"
	"vidgram/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// sessionService holds the single in-process session and keeps it in sync
// with durable storage. Persist-then-commit ordering guarantees memory and
// storage never diverge after a completed operation.
type sessionService struct {
	storage ports.SessionStorage
	authAPI ports.AuthAPI
	logger  *zap.SugaredLogger

	mu       sync.RWMutex
	session  domain.Session
	restored bool
}

// NewSessionService creates the session service. The session reports
// Loading until Restore has run.
func NewSessionService(storage ports.SessionStorage, authAPI ports.AuthAPI, logger *zap.SugaredLogger) ports.SessionService {
	return &sessionService{
		storage: storage,
		authAPI: authAPI,
		logger:  logger,
		session: domain.Session{Loading: true},
	}
}

// Restore reads token, user and permissions from durable storage. Loading
// flips to false exactly once, even when individual keys are corrupt or
// missing. Idempotent; later calls are no-ops.
func (s *sessionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return nil
	}

	defer func() {
		s.session.Loading = false
		s.restored = true
	}()

	token, ok, err := s.storage.Get(ctx, ports.StorageKeyToken)
	if err != nil {
		return fmt.Errorf("failed to restore token: %w", err)
	}
	if ok {
		s.session.Token = token
	}

	userJSON, ok, err := s.storage.Get(ctx, ports.StorageKeyUser)
	if err != nil {
		return fmt.Errorf("failed to restore user: %w", err)
	}
	if ok {
		var user domain.User
		if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
			// Corrupt record: drop it rather than poison the session
			s.logger.Warnw("discarding unparsable stored user", "error", err)
			if delErr := s.storage.Delete(ctx, ports.StorageKeyUser); delErr != nil {
				s.logger.Warnw("failed to delete corrupt user record", "error", delErr)
			}
		} else {
			s.session.User = &user
		}
	}

	permJSON, ok, err := s.storage.Get(ctx, ports.StorageKeyPermissions)
	if err != nil {
		return fmt.Errorf("failed to restore permissions: %w", err)
	}
	if ok {
		var perms domain.PermissionSet
		if err := json.Unmarshal([]byte(permJSON), &perms); err != nil {
			s.logger.Warnw("discarding unparsable stored permissions", "error", err)
			if delErr := s.storage.Delete(ctx, ports.StorageKeyPermissions); delErr != nil {
				s.logger.Warnw("failed to delete corrupt permissions record", "error", delErr)
			}
		} else {
			s.session.Permissions = perms
		}
	}

	return nil
}

// Login replaces the user and token unconditionally and derives the
// capability flags. All three fields are persisted before the in-memory
// session is committed.
func (s *sessionService) Login(ctx context.Context, user *domain.User, token string) error {
	permissions := domain.DerivePermissions(user)

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	permJSON, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("failed to marshal permissions: %w", err)
	}

	if err := s.storage.Set(ctx, ports.StorageKeyToken, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.storage.Set(ctx, ports.StorageKeyUser, string(userJSON)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	if err := s.storage.Set(ctx, ports.StorageKeyPermissions, string(permJSON)); err != nil {
		return fmt.Errorf("failed to persist permissions: %w", err)
	}

	s.mu.Lock()
	s.session.Token = token
	s.session.User = user
	s.session.Permissions = permissions
	s.mu.Unlock()

	s.logger.Infow("session established",
		"user_id", user.ID,
		"role", user.Role,
		"token", utils.MaskToken(token, 6),
	)
	return nil
}

// Logout best-effort invalidates the token remotely, then unconditionally
// clears the session in memory and in durable storage, in that order. The
// local effect always succeeds; remote and storage failures are logged.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.RLock()
	token := s.session.Token
	s.mu.RUnlock()

	if token != "" {
		if err := s.authAPI.Logout(ctx, token); err != nil {
			s.logger.Warnw("remote logout failed, clearing session anyway", "error", err)
		}
	}

	s.mu.Lock()
	s.session.Token = ""
	s.session.User = nil
	s.session.Permissions = domain.PermissionSet{}
	s.mu.Unlock()

	for _, key := range []string{ports.StorageKeyToken, ports.StorageKeyUser, ports.StorageKeyPermissions} {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warnw("failed to clear stored session key", "key", key, "error", err)
		}
	}

	s.logger.Info("session cleared")
	return nil
}

// Current returns a snapshot of the session.
func (s *sessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// IsAuthenticated reports token presence, independent of whether a user
// record is cached.
func (s *sessionService) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// TokenExpired inspects the bearer token's claims without verifying its
// signature (the client holds no signing key). Opaque tokens and tokens
// without an expiry report false.
func (s *sessionService) TokenExpired() bool {
	token := s.Current().Token
	if token == "" {
		return false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

// Close releases the durable storage backend.
func (s *sessionService) Close() error {
	return s.storage.Close()
}
