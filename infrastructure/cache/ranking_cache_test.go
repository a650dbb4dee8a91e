package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

func TestRankingKey(t *testing.T) {
	assert.Equal(t, "ranking:monthly:2025-03", rankingKey(domain.Period{Year: 2025, Month: 3}))
	assert.Equal(t, "ranking:monthly:2024-12", rankingKey(domain.Period{Year: 2024, Month: 12}))
}

func TestNoopRankingCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopRankingCache()
	period := domain.Period{Year: 2025, Month: 1}

	assert.NoError(t, c.Set(ctx, period, []*domain.RankingEntry{{MenteeID: 1, Position: 1}}))

	_, err := c.Get(ctx, period)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Invalidate(ctx, period))
	assert.NoError(t, c.InvalidateAll(ctx))
}
