package main

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const existsQuery = "SELECT EXISTS ("

func TestMigrate(t *testing.T) {
	log.SetOutput(io.Discard)

	tests := []struct {
		name        string
		existing    map[string]bool
		wantCreated []string
	}{
		{
			name:        "banco vazio cria todas as tabelas",
			existing:    map[string]bool{},
			wantCreated: []string{"artists", "posts", "post_snapshots"},
		},
		{
			name:        "só cria o que falta",
			existing:    map[string]bool{"artists": true, "posts": true},
			wantCreated: []string{"post_snapshots"},
		},
		{
			name:        "banco já migrado",
			existing:    map[string]bool{"artists": true, "posts": true, "post_snapshots": true},
			wantCreated: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			for _, table := range tables {
				mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
					WithArgs(table.Name).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.existing[table.Name]))

				if !tt.existing[table.Name] {
					mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE " + table.Name + " (")).
						WillReturnResult(sqlmock.NewResult(0, 0))
				}
			}
			mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS post_snapshots_post_platform_at_idx")).
				WillReturnResult(sqlmock.NewResult(0, 0))

			require.NoError(t, migrate(context.Background(), db))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnsureTables_InterrompeNaFalha(t *testing.T) {
	log.SetOutput(io.Discard)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errDDL := errors.New("permission denied for schema public")

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("artists").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE artists (")).
		WillReturnError(errDDL)

	created, err := ensureTables(context.Background(), db, tables)

	assert.ErrorIs(t, err, errDDL)
	assert.Equal(t, 0, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
