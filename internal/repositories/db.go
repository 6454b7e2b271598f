package repositories

import (
	"context"

	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/jmoiron/sqlx"
)

// ext returns the request-scoped transaction when one was opened by the tx
// middleware, otherwise the connection pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
