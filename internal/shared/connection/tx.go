package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Session returns a gorm handle bound to ctx. When tx is set, every statement
// built from the handle runs on that transaction, so repositories share the
// transaction the service opened on the underlying *sql.DB.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}

	s := db.Session(&gorm.Session{
		Context:                ctx,
		NewDB:                  true,
		SkipDefaultTransaction: true,
	})
	s.Statement.ConnPool = tx
	return s
}
