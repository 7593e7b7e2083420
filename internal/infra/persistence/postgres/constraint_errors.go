package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// violation names the integrity constraint a failed write tripped over.
type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
	violationNotNull
	violationCheck
)

// SQLSTATE class 23 codes.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

// classifyViolation maps a write error to the constraint it violated. It
// understands raw driver errors as well as gorm's translated sentinels.
func classifyViolation(err error) violation {
	if err == nil {
		return violationNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUnique:
			return violationUnique
		case sqlStateForeignKey:
			return violationForeignKey
		case sqlStateNotNull:
			return violationNotNull
		case sqlStateCheck:
			return violationCheck
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return violationUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return violationForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return violationCheck
	}

	return violationNone
}
