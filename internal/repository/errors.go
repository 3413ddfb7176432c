package repository

import (
	"errors"
	"fmt"

	apperrors "festival-lineup/pkg/app_errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersEmailConstraint = "users_email_key"

// translatePgError maps constraint violations onto app errors; other errors pass through.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == usersEmailConstraint {
			return apperrors.ErrEmailAlreadyRegistered
		}
	case pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s is required", apperrors.ErrInvalidInput, pgErr.ColumnName)
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, pgErr.ConstraintName)
	}
	return err
}

// MongoDB "DocumentValidationFailure", raised by the $jsonSchema collection validator.
const mongoCodeDocumentValidationFailure = 121

func translateMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrEmailAlreadyRegistered
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(mongoCodeDocumentValidationFailure) {
		return fmt.Errorf("%w: document failed schema validation", apperrors.ErrInvalidInput)
	}
	return err
}
