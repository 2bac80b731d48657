package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/logger"
)

func newTestSecretRepo(t *testing.T) (*secretRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return newSecretRepository(newOpenedConnector(db), logger.Nop()), mock
}

func TestCountSecrets(t *testing.T) {
	repo, mock := newTestSecretRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(countSecrets)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountSecrets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountSecrets_Error(t *testing.T) {
	repo, mock := newTestSecretRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(countSecrets)).WillReturnError(errors.New("boom"))

	_, err := repo.CountSecrets(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetSecretHash(t *testing.T) {
	repo, mock := newTestSecretRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSecretHash)).
		WillReturnRows(sqlmock.NewRows([]string{"pin_hash"}).AddRow("$2a$10$abc"))

	hash, found, err := repo.GetSecretHash(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "$2a$10$abc", hash)
}

func TestGetSecretHash_NoRows(t *testing.T) {
	repo, mock := newTestSecretRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSecretHash)).
		WillReturnRows(sqlmock.NewRows([]string{"pin_hash"}))

	hash, found, err := repo.GetSecretHash(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, hash)
}

func TestReplaceSecretHash_DeletesThenInsertsInTransaction(t *testing.T) {
	repo, mock := newTestSecretRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteAllSecrets)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertSecret)).
		WithArgs("$2a$10$new").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceSecretHash(context.Background(), "$2a$10$new"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceSecretHash_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:    "begin fails",
			setup:   func(mock sqlmock.Sqlmock) { mock.ExpectBegin().WillReturnError(boom) },
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "delete fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(deleteAllSecrets)).WillReturnError(boom)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "insert fails and old secret is kept",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(deleteAllSecrets)).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(insertSecret)).WillReturnError(boom)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(deleteAllSecrets)).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta(insertSecret)).WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit().WillReturnError(boom)
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSecretRepo(t)
			tt.setup(mock)

			err := repo.ReplaceSecretHash(context.Background(), "hash")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
