package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Arjunram-pal/portfolio/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultTTL = 24 * time.Hour
	// sessions are written by the site api on admin login, value is the
	// creation unix timestamp
	SessionKeyPrefix = "portfolio-admin-session||"
)

// LoginChecker resolves the admin flag of a request from the session token in
// its cookie. It never creates or removes sessions.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (logged bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "loginChecker.isLogged")
	defer func() {
		span.SetAttributes(attribute.Bool("logged", logged))
		tracing.EndSpan(span, err)
	}()

	if token == "" {
		return false, nil
	}

	createdAtUnixStr, err := lc.redisClient.Get(ctx, SessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse session created at [%s]: %w", createdAtUnixStr, err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if lc.now().Sub(createdAt) > lc.ttl {
		return false, nil
	}

	return true, nil
}
