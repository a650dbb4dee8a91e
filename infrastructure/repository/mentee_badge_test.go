package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

func TestPointsByPeriodQuery(t *testing.T) {
	query, args, err := pointsByPeriodQuery(domain.Period{Year: 2025, Month: 3}, domain.CriterionRankingTop).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "(b.criterion::jsonb ->> 'tipo') IS DISTINCT FROM $3")
	assert.NotContains(t, query, "b.category")
	assert.Equal(t, []any{3, 2025, "ranking_top"}, args)
}
