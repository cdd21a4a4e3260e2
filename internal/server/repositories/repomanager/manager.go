// Package repomanager groups the per-entity repositories behind one factory
// so services can run them against either *sql.DB or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/krishnapriya5647/smart-asset-system/internal/dbx"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assets"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assignments"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/inventory"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/notifications"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/refreshtokens"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/resettokens"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/tickets"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Assets(db dbx.DBTX) assets.Repository
	Inventory(db dbx.DBTX) inventory.Repository
	Assignments(db dbx.DBTX) assignments.Repository
	Tickets(db dbx.DBTX) tickets.Repository
	Notifications(db dbx.DBTX) notifications.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
}
