package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want violation
	}{
		{name: "nil", err: nil, want: violationNone},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: violationUnique},
		{name: "wrapped foreign key", err: errors.Wrap(&pgconn.PgError{Code: "23503"}, "insert"), want: violationForeignKey},
		{name: "not null", err: &pgconn.PgError{Code: "23502"}, want: violationNotNull},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: violationCheck},
		{name: "other sqlstate", err: &pgconn.PgError{Code: "40001"}, want: violationNone},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: violationUnique},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: violationForeignKey},
		{name: "plain error", err: errors.New("connection reset"), want: violationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyViolation(tt.err))
		})
	}
}
