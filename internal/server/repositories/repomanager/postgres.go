package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/krishnapriya5647/smart-asset-system/internal/dbx"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/migrations"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assets"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assignments"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/inventory"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/notifications"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/refreshtokens"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/resettokens"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/tickets"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/users"
)

type PostgresRepositoryManager struct{}

func NewPostgres() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, db, ".")
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Assets(db dbx.DBTX) assets.Repository {
	return assets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Inventory(db dbx.DBTX) inventory.Repository {
	return inventory.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Assignments(db dbx.DBTX) assignments.Repository {
	return assignments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tickets(db dbx.DBTX) tickets.Repository {
	return tickets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Notifications(db dbx.DBTX) notifications.Repository {
	return notifications.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ResetTokens(db dbx.DBTX) resettokens.Repository {
	return resettokens.NewPostgresRepository(db)
}
