package repositories

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("object not found")
	ErrAmbiguousFilter  = errors.New("filter matches more than one object")
	ErrAlreadyExists    = errors.New("object already exists")
	ErrInvalidReference = errors.New("referenced object does not exist")
)

const (
	mysqlDuplicateEntry = 1062
	mysqlNoReferenced   = 1452
)

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlNoReferenced {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint")
}

// translateWriteError maps driver level constraint failures onto the
// package sentinels. Other errors pass through untouched.
func translateWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case isDuplicateKey(err):
		return errors.Join(ErrAlreadyExists, err)
	case isForeignKeyError(err):
		return errors.Join(ErrInvalidReference, err)
	default:
		return err
	}
}
