package migrations

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ApplyOne(ctx context.Context, conn *pgxpool.Conn, name, body string) error {
	return applyOne(ctx, conn, name, body)
}
