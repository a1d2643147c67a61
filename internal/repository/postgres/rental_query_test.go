package postgres

import (
	"strings"
	"testing"

	"boardcamp-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildRentalListQuery_Default(t *testing.T) {
	query, args, err := buildRentalListQuery(repository.RentalListSpec{Limit: 10})
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "rentals"`)
	assert.Contains(t, query, `INNER JOIN "customers" ON ("customers"."id" = "rentals"."customerId")`)
	assert.Contains(t, query, `INNER JOIN "games" ON ("games"."id" = "rentals"."gameId")`)
	assert.Contains(t, query, `INNER JOIN "categories" ON ("categories"."id" = "games"."categoryId")`)
	assert.Contains(t, query, `ORDER BY "rentals"."id" ASC`)
	assert.Contains(t, query, "LIMIT")
	assert.NotContains(t, query, "WHERE")

	require.Len(t, args, 1)
	assert.EqualValues(t, 10, args[0])
}

func TestBuildRentalListQuery_DefaultWithOffset(t *testing.T) {
	query, args, err := buildRentalListQuery(repository.RentalListSpec{Offset: 20, Limit: 10})
	require.NoError(t, err)

	assert.Contains(t, query, "LIMIT")
	assert.Contains(t, query, "OFFSET")
	// LIMIT renders before OFFSET, so the limit binds first.
	require.Len(t, args, 2)
	assert.EqualValues(t, 10, args[0])
	assert.EqualValues(t, 20, args[1])
}

func TestBuildRentalListQuery_CustomerFilter(t *testing.T) {
	spec := repository.RentalListSpec{CustomerID: int64Ptr(7), Offset: 20, Limit: 10}
	query, args, err := buildRentalListQuery(spec)
	require.NoError(t, err)

	assert.Contains(t, query, `WHERE ("rentals"."customerId" = $1)`)
	// Any filter disables pagination and default ordering.
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
	assert.NotContains(t, query, "ORDER BY")

	require.Len(t, args, 1)
	assert.EqualValues(t, 7, args[0])
}

func TestBuildRentalListQuery_GameFilter(t *testing.T) {
	query, args, err := buildRentalListQuery(repository.RentalListSpec{GameID: int64Ptr(3)})
	require.NoError(t, err)

	assert.Contains(t, query, `WHERE ("rentals"."gameId" = $1)`)
	require.Len(t, args, 1)
	assert.EqualValues(t, 3, args[0])
}

func TestBuildRentalListQuery_BothFilters(t *testing.T) {
	spec := repository.RentalListSpec{CustomerID: int64Ptr(7), GameID: int64Ptr(3)}
	query, args, err := buildRentalListQuery(spec)
	require.NoError(t, err)

	assert.Contains(t, query, `"rentals"."customerId" = $1`)
	assert.Contains(t, query, `"rentals"."gameId" = $2`)
	assert.Contains(t, query, " AND ")

	require.Len(t, args, 2)
	assert.EqualValues(t, 7, args[0])
	assert.EqualValues(t, 3, args[1])
}

func TestBuildRentalListQuery_ValuesNeverInlined(t *testing.T) {
	spec := repository.RentalListSpec{CustomerID: int64Ptr(42), GameID: int64Ptr(99)}
	query, _, err := buildRentalListQuery(spec)
	require.NoError(t, err)

	assert.False(t, strings.Contains(query, "42"), "filter value leaked into SQL text")
	assert.False(t, strings.Contains(query, "99"), "filter value leaked into SQL text")
}
