// Package redis provides a Redis-backed session store, selectable via
// configuration as an alternative to the relational sessions table.
package redis

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"forkful/config"
	"forkful/internal/domain/entity"
	"forkful/internal/domain/lifecycle"
	"forkful/internal/domain/repository"
	"forkful/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	sessionKeyPrefix   = "session:"
	userSessionsPrefix = "user_sessions:"
	fieldUserID        = "user_id"
	fieldCreatedAt     = "created_at"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client with lifecycle management.
func NewClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis configuration is missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// sessionRepository implements the domain's SessionRepository interface on Redis.
// Entries are written without TTL: sessions only end on explicit logout.
type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository is the constructor for the Redis sessionRepository.
func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	now := time.Now().UTC()
	key := sessionKeyPrefix + session.TokenHash

	pipe := repo.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldUserID, session.UserID,
		fieldCreatedAt, now.Format(time.RFC3339Nano),
	)
	pipe.SAdd(ctx, userSessionsPrefix+strconv.Itoa(session.UserID), session.TokenHash)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.CreatedAt = now

	return nil
}

// FindByTokenHash retrieves the session stored under the given digest.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	values, err := repo.client.HGetAll(ctx, sessionKeyPrefix+tokenHash).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session by token")
	}
	if len(values) == 0 {
		return nil, repository.ErrSessionNotFound
	}

	userID, err := strconv.Atoi(values[fieldUserID])
	if err != nil {
		return nil, errors.Wrap(err, "corrupt session record")
	}

	session := &entity.Session{
		UserID:    userID,
		TokenHash: tokenHash,
	}
	if createdAt, err := time.Parse(time.RFC3339Nano, values[fieldCreatedAt]); err == nil {
		session.CreatedAt = createdAt
	}

	return session, nil
}

// DeleteByTokenHash invalidates the session stored under the given digest.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	session, err := repo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return err
	}

	pipe := repo.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+tokenHash)
	pipe.SRem(ctx, userSessionsPrefix+strconv.Itoa(session.UserID), tokenHash)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteAllForUser invalidates every session belonging to a user.
func (repo *sessionRepository) DeleteAllForUser(ctx context.Context, userID int) error {
	setKey := userSessionsPrefix + strconv.Itoa(userID)
	hashes, err := repo.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return errors.Wrap(err, "failed to list user sessions")
	}

	pipe := repo.client.TxPipeline()
	for _, hash := range hashes {
		pipe.Del(ctx, sessionKeyPrefix+hash)
	}
	pipe.Del(ctx, setKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete user sessions")
	}

	return nil
}
