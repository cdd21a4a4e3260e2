package assets

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

func assetRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "type", "serial_number", "status", "purchase_date"})
}

func TestList_NoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, type, serial_number, status, purchase_date FROM assets ORDER BY id DESC`).
		WillReturnRows(assetRows().
			AddRow(2, "Laptop", "LAPTOP", "SN-2", models.AssetAvailable, nil).
			AddRow(1, "Monitor", "MONITOR", "SN-1", models.AssetAssigned, time.Now()))

	r := NewPostgresRepository(db)
	list, err := r.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Laptop", list[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryAndStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM assets WHERE \(name ILIKE \$1 OR serial_number ILIKE \$1\) AND status = \$2`).
		WithArgs("%dell%", models.AssetAvailable).
		WillReturnRows(assetRows().AddRow(5, "Dell XPS", "LAPTOP", "SN-5", models.AssetAvailable, nil))

	r := NewPostgresRepository(db)
	list, err := r.List(context.Background(), Filter{Query: "dell", Status: models.AssetAvailable})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(5), list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyScopeReturnsNothingWithoutQuerying(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgresRepository(db)
	list, err := r.List(context.Background(), Filter{IDs: []int64{}})
	require.NoError(t, err)
	assert.Nil(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM assets WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(assetRows())

	r := NewPostgresRepository(db)
	_, err = r.Get(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_DuplicateSerial(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO assets`).
		WillReturnError(assert.AnError)

	r := NewPostgresRepository(db)
	_, err = r.Create(context.Background(), &models.Asset{Name: "x", SerialNumber: "SN"})
	assert.Error(t, err)
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE assets`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := NewPostgresRepository(db)
	err = r.Update(context.Background(), &models.Asset{ID: 99, Name: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM assets GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(models.AssetAssigned, 3).
			AddRow(models.AssetAvailable, 7))

	r := NewPostgresRepository(db)
	counts, err := r.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{models.AssetAssigned: 3, models.AssetAvailable: 7}, counts)
}
