package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

func TestInventoryRepository_Grant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prepareFn func(mock pgxmock.PgxPoolIface)
		wantErr   error
		wantWrap  string
	}{
		{
			name: "new record",
			prepareFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO inventory").
					WithArgs("alice", int64(1)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "already owned",
			prepareFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO inventory").
					WithArgs("alice", int64(1)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			wantErr: domain.ErrAlreadyOwned,
		},
		{
			name: "unknown item",
			prepareFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO inventory").
					WithArgs("alice", int64(1)).
					WillReturnError(&pgconn.PgError{Code: PgErrorCodeForeignKeyViolation})
			},
			wantErr: domain.ErrItemNotFound,
		},
		{
			name: "database error",
			prepareFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO inventory").
					WithArgs("alice", int64(1)).
					WillReturnError(assert.AnError)
			},
			wantErr:  assert.AnError,
			wantWrap: ErrMsgFailedToGrantItem,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareFn(mock)

			err = NewInventoryRepository(mock).Grant(t.Context(), "alice", 1)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantWrap != "" {
					assert.Contains(t, err.Error(), tt.wantWrap)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInventoryRepository_IsOwned(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("bob", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewInventoryRepository(mock)

	owned, err := repo.IsOwned(t.Context(), "alice", 1)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = repo.IsOwned(t.Context(), "bob", 1)
	require.NoError(t, err)
	assert.False(t, owned)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_ListOwned(t *testing.T) {
	t.Parallel()

	t.Run("owned items", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM inventory i").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(catalogRowColumns).
				AddRow(int64(1), "Cat", "A cute cat", "", int64(100), "pets", false, false, createdAt))

		items, err := NewInventoryRepository(mock).ListOwned(t.Context(), "alice")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Cat", items[0].Name)
		assert.False(t, items[0].Available, "ownership survives the item becoming unavailable")
	})

	t.Run("empty inventory", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM inventory i").
			WithArgs("nobody").
			WillReturnRows(pgxmock.NewRows(catalogRowColumns))

		items, err := NewInventoryRepository(mock).ListOwned(t.Context(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
