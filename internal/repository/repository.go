package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geoportal/internal/service"
)

// DB - подмножество pgxpool.Pool, используемое репозиторием (удобно подменять в тестах)
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type GeoportalRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewGeoportalRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) service.GeoportalRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &GeoportalRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}
