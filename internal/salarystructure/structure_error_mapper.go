package salarystructure

import (
	"errors"
	"strings"

	structureerrors "go-payroll/internal/salarystructure/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return structureerrors.ErrStructureNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return structureerrors.ErrDuplicateStructureCode
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return structureerrors.ErrDuplicateStructureCode
	}

	return err
}
