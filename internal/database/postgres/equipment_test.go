package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

func TestEquipmentRepository_Equip(t *testing.T) {
	t.Parallel()

	t.Run("owned item", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO equipped_items").
			WithArgs("alice", int64(2)).
			WillReturnRows(pgxmock.NewRows(catalogRowColumns).
				AddRow(int64(2), "Dog", "A loyal dog", "/static/dog.png", int64(100), "pets", true, false, createdAt))

		item, err := NewEquipmentRepository(mock).Equip(t.Context(), "alice", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), item.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO equipped_items").
			WithArgs("alice", int64(3)).
			WillReturnRows(pgxmock.NewRows(catalogRowColumns))

		item, err := NewEquipmentRepository(mock).Equip(t.Context(), "alice", 3)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, domain.ErrNotOwned)
	})

	t.Run("database error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO equipped_items").
			WithArgs("alice", int64(3)).
			WillReturnError(assert.AnError)

		_, err = NewEquipmentRepository(mock).Equip(t.Context(), "alice", 3)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, domain.ErrNotOwned)
	})
}

func TestEquipmentRepository_GetEquipped(t *testing.T) {
	t.Parallel()

	t.Run("empty slot", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM equipped_items e").
			WithArgs("alice").
			WillReturnError(pgx.ErrNoRows)

		item, err := NewEquipmentRepository(mock).GetEquipped(t.Context(), "alice")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("equipped", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM equipped_items e").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(catalogRowColumns).
				AddRow(int64(1), "Cat", "A cute cat", "/static/cat.png", int64(100), "pets", true, false, createdAt))

		item, err := NewEquipmentRepository(mock).GetEquipped(t.Context(), "alice")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Cat", item.Name)
	})
}
