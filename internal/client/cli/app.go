package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/config"
	"github.com/sunflowers/shopfront/internal/client/repositories/cartcache"
	"github.com/sunflowers/shopfront/internal/client/repositories/session"
	"github.com/sunflowers/shopfront/internal/client/services"
	"github.com/sunflowers/shopfront/internal/common"
	"github.com/sunflowers/shopfront/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired service graph and the interactive loop state.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader

	sessions *services.SessionService
	catalog  *services.CatalogService
	carts    *services.CartService
	checkout *services.CheckoutService
	admin    *services.AdminService
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	repo := session.NewSQLiteRepository(db)
	cache := cartcache.New()
	endpoints := api.NewEndpoints(c.APIBaseURL)
	hc := &http.Client{Timeout: c.RequestTimeout}

	sessions := services.NewSessionService(repo, cache, endpoints, hc, logger)
	gw := sessions.Gateway()

	return &App{
		config:   c,
		log:      logger,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		sessions: sessions,
		catalog:  services.NewCatalogService(gw, endpoints, logger),
		carts:    services.NewCartService(gw, endpoints, cache, logger),
		checkout: services.NewCheckoutService(gw, endpoints, repo, logger),
		admin:    services.NewAdminService(sessions, endpoints, logger),
	}, nil
}

// Run restores the persisted session, loads the cart for authenticated
// shoppers, and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.sessions.Initialize(ctx); err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if a.sessions.IsAuthenticated() {
		if err := a.carts.Load(ctx); err != nil {
			_ = a.report(ctx, err)
		}
	}

	log.Println("Welcome to the shop CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.sessions.IsAdmin()
}

func (a *App) getStatus() string {
	if u := a.sessions.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// report logs a command failure. A rejected credential additionally forces
// a local logout so the next prompt reflects the anonymous state.
func (a *App) report(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrUnauthorized) {
		log.Println("Session expired, please log in again")
		a.sessions.HandleUnauthorized(ctx)
		a.carts.Purge()
		return err
	}
	log.Printf("error: %v", err)
	return err
}
