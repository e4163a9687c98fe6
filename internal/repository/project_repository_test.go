package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockRepo wires the repository against a sqlmock connection so the
// emitted SQL itself can be asserted on.
func setupMockRepo(t *testing.T) (ProjectRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewProjectRepository(db), mock
}

func TestGormProjectRepository_IncrementViews_IsAtomic(t *testing.T) {
	repo, mock := setupMockRepo(t)
	id := uuid.New()

	// A single relative UPDATE, no read-modify-write round trip.
	mock.ExpectExec(`UPDATE "projects" SET "views"=views \+ \$1 WHERE id = \$2`).
		WithArgs(1, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_IncrementLikes_IsAtomic(t *testing.T) {
	repo, mock := setupMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "projects" SET "likes"=likes \+ \$1 WHERE id = \$2`).
		WithArgs(1, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT likes FROM "projects" WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(5))

	likes, err := repo.IncrementLikes(id)
	require.NoError(t, err)
	require.EqualValues(t, 5, likes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_IncrementLikes_UnknownID(t *testing.T) {
	repo, mock := setupMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "projects" SET "likes"=likes \+ \$1 WHERE id = \$2`).
		WithArgs(1, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.IncrementLikes(id)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
