package queries_test

import (
	"testing"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/queries"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelsQuery(t *testing.T) {
	t.Run("should create owner scoped query", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		q, err := queries.NewGetParcelsQuery(ownerID)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.NotNil(t, q.OwnerID())
		assert.True(t, q.OwnerID().IsEqual(ownerID))
	})

	t.Run("should create unscoped admin query", func(t *testing.T) {
		q := queries.NewGetAllParcelsQuery()
		require.NoError(t, q.Validate())
		assert.Nil(t, q.OwnerID())
	})

	t.Run("should reject zero value owner", func(t *testing.T) {
		_, err := queries.NewGetParcelsQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var q queries.GetParcelsQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrGetParcelsQueryIsNotConstructed)
	})
}

func TestNewGetParcelByIDQuery(t *testing.T) {
	t.Run("should create query from valid id", func(t *testing.T) {
		q, err := queries.NewGetParcelByIDQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		_, err := queries.NewGetParcelByIDQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewTrackParcelQuery(t *testing.T) {
	t.Run("should create query from valid tracking number", func(t *testing.T) {
		tn := kernel.NewTrackingNumber(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		q, err := queries.NewTrackParcelQuery(tn)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, tn.String(), q.TrackingNumber().String())
	})

	t.Run("should reject zero value tracking number", func(t *testing.T) {
		_, err := queries.NewTrackParcelQuery(kernel.TrackingNumber{})
		require.Error(t, err)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var q queries.TrackParcelQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrTrackParcelQueryIsNotConstructed)
	})
}
