package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agentally/buyerdesk/internal/database/repository"
)

func newTestDB(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return ctx, db
}

func TestSeedDefaultsPopulatesEverything(t *testing.T) {
	t.Parallel()

	ctx, db := newTestDB(t)
	require.NoError(t, SeedDefaults(ctx, db))

	props, err := repository.NewPropertyRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, props, 3)
	require.Equal(t, "Modern Downtown Loft", props[0].Title)
	require.Equal(t, int64(78_500_000), props[0].PriceCents)

	templates, err := repository.NewOfferRepo(db).ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 4)

	saved, err := repository.NewOfferRepo(db).ListSaved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	msgs, err := repository.NewMessageRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	require.True(t, msgs[0].Unread)
	require.NotEmpty(t, msgs[0].Attachments)

	annotations, err := repository.NewMessageRepo(db).Annotations(ctx)
	require.NoError(t, err)
	require.Len(t, annotations, 5)

	stages, err := repository.NewTimelineRepo(db).ListStages(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 7)

	points, err := repository.NewMarketRepo(db).ListPoints(ctx)
	require.NoError(t, err)
	require.Len(t, points, 6)

	openers, err := repository.NewDashboardRepo(db).ListOpeners(ctx)
	require.NoError(t, err)
	require.Len(t, openers, 5)

	stats, err := repository.NewDashboardRepo(db).ListStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 4)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, db := newTestDB(t)
	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	props, err := repository.NewPropertyRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, props, 3)

	msgs, err := repository.NewMessageRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
}

func TestSeedIDIsDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, SeedID("property", "Modern Downtown Loft"), SeedID("property", "Modern Downtown Loft"))
	require.NotEqual(t, SeedID("property", "Modern Downtown Loft"), SeedID("property", "Seaside Villa"))
	require.NotEqual(t, SeedID("property", "x"), SeedID("template", "x"))
}
