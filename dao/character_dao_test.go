// api/dao/character_dao_test.go
package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/lotr/api/audit"
	"github.com/dev-mohitbeniwal/lotr/api/dao"
	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
)

type fakeAuditService struct {
	entries []audit.AuditLog
}

func (f *fakeAuditService) LogChange(ctx context.Context, entry audit.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditService) QueryLogs(ctx context.Context, from, to time.Time, entityType string, entityID int) ([]audit.AuditLog, error) {
	return f.entries, nil
}

func TestCharacterDAO(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAllCharacters_PaginatesAndCounts", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		characterDAO := dao.NewCharacterDAO(gormDB, &fakeAuditService{})

		mock.ExpectQuery("SELECT count.* FROM .characters.").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
		mock.ExpectQuery("SELECT .* FROM .characters. ORDER BY id LIMIT").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "birth_date", "kingdom"}).
				AddRow(11, "Aragorn", "2931-03-01", "Gondor").
				AddRow(12, "Boromir", "2978-01-01", "Gondor"))

		characters, total, err := characterDAO.GetAllCharacters(ctx, 2, 10, "")
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		require.Len(t, characters, 2)
		assert.Equal(t, "Aragorn", characters[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAllCharacters_SearchFiltersByName", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		characterDAO := dao.NewCharacterDAO(gormDB, &fakeAuditService{})

		mock.ExpectQuery("SELECT count.* FROM .characters. WHERE name LIKE").
			WithArgs("%gorn%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT .* FROM .characters. WHERE name LIKE").
			WithArgs("%gorn%").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(11, "Aragorn"))

		characters, total, err := characterDAO.GetAllCharacters(ctx, 1, 10, "gorn")
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, characters, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetCharacterByID_NotFound", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		characterDAO := dao.NewCharacterDAO(gormDB, &fakeAuditService{})

		mock.ExpectQuery("SELECT .* FROM .characters.").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		character, err := characterDAO.GetCharacterByID(ctx, 404)
		assert.ErrorIs(t, err, lotr_errors.ErrCharacterNotFound)
		assert.Nil(t, character)
	})

	t.Run("DeleteCharacter_NotFoundWhenNoRows", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		auditSvc := &fakeAuditService{}
		characterDAO := dao.NewCharacterDAO(gormDB, auditSvc)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM .characters.").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := characterDAO.DeleteCharacter(ctx, 404, 7)
		assert.ErrorIs(t, err, lotr_errors.ErrCharacterNotFound)
		assert.Empty(t, auditSvc.entries)
	})

	t.Run("DeleteCharacter_RecordsAuditEntry", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		auditSvc := &fakeAuditService{}
		characterDAO := dao.NewCharacterDAO(gormDB, auditSvc)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM .characters.").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := characterDAO.DeleteCharacter(ctx, 11, 7)
		require.NoError(t, err)
		require.Len(t, auditSvc.entries, 1)
		assert.Equal(t, "deleted", auditSvc.entries[0].Action)
		assert.Equal(t, "character", auditSvc.entries[0].EntityType)
		assert.Equal(t, 11, auditSvc.entries[0].EntityID)
		assert.Equal(t, 7, auditSvc.entries[0].UserID)
	})
}
