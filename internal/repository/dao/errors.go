package dao

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mysqlErrDataTooLong is ER_DATA_TOO_LONG.
const mysqlErrDataTooLong = 1406

var ErrValueTooLong = errors.New("value too long for column")

func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.StringDataRightTruncationDataException {
		return ErrValueTooLong
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrDataTooLong {
		return ErrValueTooLong
	}

	return err
}
