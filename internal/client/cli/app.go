package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/config"
	"github.com/aidirectory/adminctl/internal/client/localdb"
	"github.com/aidirectory/adminctl/internal/client/session"
	"github.com/aidirectory/adminctl/internal/client/stores"
	"github.com/aidirectory/adminctl/internal/logging"
)

// App owns the wired client: one gateway, one session, one store per entity.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store

	items      *stores.ItemStore
	categories *stores.CategoryStore
	tags       *stores.TagStore
	customers  *stores.CustomerStore
	favorites  *stores.FavoriteStore
	dashboard  *stores.DashboardStore

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, restores any persisted session and builds
// the gateway and stores. The session store is created first and bound to the
// gateway afterwards because each needs the other: the gateway asks the
// session for the bearer token, and the session calls the gateway to log in.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	sess := session.New(db, log)
	gateway := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, sess, func() {
		fmt.Fprintln(a.out, "Session expired, please log in again.")
	}, log)
	sess.Bind(gateway)

	if err := sess.Restore(ctx); err != nil {
		log.Warn(ctx, "session restore failed", "error", err)
	}

	a.session = sess
	a.items = stores.NewItemStore(gateway, cfg.PageLimit, log)
	a.categories = stores.NewCategoryStore(gateway, log)
	a.tags = stores.NewTagStore(gateway, log)
	a.customers = stores.NewCustomerStore(gateway, log)
	a.favorites = stores.NewFavoriteStore(gateway, log)
	a.dashboard = stores.NewDashboardStore(gateway, log)

	return a, nil
}

// Run drives the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the local database.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "closing local database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}
