package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/config"
	"github.com/marafik-io/greenspace/internal/pkg/utils"
	"github.com/redis/go-redis/v9"
)

// SessionService is the redis-backed session store. Tokens are opaque to
// the rest of the system; the per-account token set exists so deactivating
// an account can revoke every live session at once, not just let them
// expire.
type SessionService interface {
	// Issue creates a session token bound to the account.
	Issue(ctx context.Context, accountID uuid.UUID) (string, error)
	// Resolve returns the account a token is bound to, or ErrNoSession.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	// Revoke removes one token.
	Revoke(ctx context.Context, token string) error
	// RevokeAll removes every token bound to the account. Hard requirement
	// for account deactivation: a disabled account loses access mid-session.
	RevokeAll(ctx context.Context, accountID uuid.UUID) error
}

type sessionService struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewSessionService(rdb *redis.Client, cfg *config.Config) SessionService {
	ttl := time.Duration(cfg.Auth.SessionTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 14 * 24 * time.Hour
	}
	return &sessionService{rdb: rdb, ttl: ttl, prefix: cfg.Auth.TokenPrefix}
}

func sessionKey(token string) string { return "session:" + token }

func accountSessionsKey(accountID uuid.UUID) string {
	return fmt.Sprintf("account_sessions:%s", accountID)
}

func (s *sessionService) Issue(ctx context.Context, accountID uuid.UUID) (string, error) {
	token, err := utils.GenerateToken(s.prefix)
	if err != nil {
		return "", err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(token), accountID.String(), s.ttl)
	pipe.SAdd(ctx, accountSessionsKey(accountID), token)
	pipe.Expire(ctx, accountSessionsKey(accountID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNoSession
	}
	if err != nil {
		return uuid.Nil, err
	}
	accountID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrNoSession
	}
	return accountID, nil
}

func (s *sessionService) Revoke(ctx context.Context, token string) error {
	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(token))
	if accountID, perr := uuid.Parse(val); perr == nil {
		pipe.SRem(ctx, accountSessionsKey(accountID), token)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *sessionService) RevokeAll(ctx context.Context, accountID uuid.UUID) error {
	tokens, err := s.rdb.SMembers(ctx, accountSessionsKey(accountID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, sessionKey(token))
	}
	pipe.Del(ctx, accountSessionsKey(accountID))
	_, err = pipe.Exec(ctx)
	return err
}
