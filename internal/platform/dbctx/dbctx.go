package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

func New(ctx context.Context) Context { return Context{Ctx: ctx} }

// Conn returns the transaction when one is set, otherwise db, bound to the request context.
func (c Context) Conn(db *gorm.DB) *gorm.DB {
	tx := c.Tx
	if tx == nil {
		tx = db
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return tx.WithContext(ctx)
}
