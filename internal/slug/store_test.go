package slug

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormCounterCountBySlug(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "artists" WHERE slug = \$1`).
		WithArgs("test-artist").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := GormCounter{DB: gormDB}.CountBySlug(KindArtist, "test-artist", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCounterExcludesRecord(t *testing.T) {
	gormDB, mock := newMockDB(t)
	excludeID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "events" WHERE slug = \$1 AND id <> \$2`).
		WithArgs("tango-night", excludeID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := GormCounter{DB: gormDB}.CountBySlug(KindEvent, "tango-night", &excludeID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignResolvesCollisionAgainstStore(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "artists" WHERE slug = \$1`).
		WithArgs("tango-quartet").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "artists" WHERE slug = \$1`).
		WithArgs("tango-quartet-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	got, err := Assign(gormDB, "Tango Quartet", KindArtist, nil)
	require.NoError(t, err)
	assert.Equal(t, "tango-quartet-1", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
