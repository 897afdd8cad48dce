package postgres

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agendarep-api/internal/domain/access"
)

// Ids fuera de int4 no llegan a la base: el repositorio sin Querier no debe tocarse.
func TestVisitRepo_IDFueraDeRango(t *testing.T) {
	repo := NewVisitRepository(nil)
	ctx := context.Background()

	for _, id := range []int64{0, -1, math.MaxInt32 + 1, math.MaxInt64} {
		ok, err := repo.Confirm(ctx, access.All(), id)
		require.NoError(t, err, "confirm %d", id)
		assert.False(t, ok)

		ok, err = repo.UpdateNote(ctx, access.All(), id, "x")
		require.NoError(t, err, "update note %d", id)
		assert.False(t, ok)
	}
}

func TestValidVisitID(t *testing.T) {
	assert.True(t, validVisitID(1))
	assert.True(t, validVisitID(math.MaxInt32))
	assert.False(t, validVisitID(math.MaxInt32+1))
	assert.False(t, validVisitID(0))
}
