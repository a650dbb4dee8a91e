// Package cache mantém em Redis os rankings mensais já calculados
package cache

//go:generate mockgen -source=ranking_cache.go -destination=mocks/mock_ranking_cache.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrCacheMiss = errors.New("cache: chave não encontrada")

const rankingKeyPrefix = "ranking:monthly:"

type RankingCache interface {
	Get(ctx context.Context, period domain.Period) ([]*domain.RankingEntry, error)
	Set(ctx context.Context, period domain.Period, entries []*domain.RankingEntry) error
	Invalidate(ctx context.Context, period domain.Period) error
	InvalidateAll(ctx context.Context) error
}

// NewRedisClient cria o cliente e valida a conexão
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	return client, nil
}

type redisRankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, ttl time.Duration) RankingCache {
	return &redisRankingCache{
		client: client,
		ttl:    ttl,
	}
}

func rankingKey(period domain.Period) string {
	return fmt.Sprintf("%s%04d-%02d", rankingKeyPrefix, period.Year, period.Month)
}

func (c *redisRankingCache) Get(ctx context.Context, period domain.Period) ([]*domain.RankingEntry, error) {
	data, err := c.client.Get(ctx, rankingKey(period)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("erro ao ler ranking do cache: %w", err)
	}

	var entries []*domain.RankingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("erro ao decodificar ranking do cache: %w", err)
	}

	return entries, nil
}

func (c *redisRankingCache) Set(ctx context.Context, period domain.Period, entries []*domain.RankingEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("erro ao codificar ranking: %w", err)
	}

	if err := c.client.Set(ctx, rankingKey(period), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar ranking no cache: %w", err)
	}
	return nil
}

func (c *redisRankingCache) Invalidate(ctx context.Context, period domain.Period) error {
	if err := c.client.Del(ctx, rankingKey(period)).Err(); err != nil {
		return fmt.Errorf("erro ao invalidar ranking no cache: %w", err)
	}
	return nil
}

// InvalidateAll remove os rankings de todos os períodos. As entradas guardam nome e foto do mentorado.
func (c *redisRankingCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, rankingKeyPrefix+"*", 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("erro ao listar rankings no cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("erro ao invalidar rankings no cache: %w", err)
	}
	return nil
}

// noopRankingCache é usado quando o Redis está desabilitado
type noopRankingCache struct{}

func NewNoopRankingCache() RankingCache {
	return noopRankingCache{}
}

func (noopRankingCache) Get(context.Context, domain.Period) ([]*domain.RankingEntry, error) {
	return nil, ErrCacheMiss
}

func (noopRankingCache) Set(context.Context, domain.Period, []*domain.RankingEntry) error {
	return nil
}

func (noopRankingCache) Invalidate(context.Context, domain.Period) error {
	return nil
}

func (noopRankingCache) InvalidateAll(context.Context) error {
	return nil
}
