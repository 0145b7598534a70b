package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quirklo/storefront/config"
	"github.com/quirklo/storefront/internal/adapter/catalog"
	"github.com/quirklo/storefront/internal/adapter/storage"
	"github.com/quirklo/storefront/internal/adapter/tui"
	"github.com/quirklo/storefront/internal/core/port"
	"github.com/quirklo/storefront/internal/core/service"
)

type stores struct {
	catalog  port.CatalogProvider
	cart     port.CartKeeper
	wishlist port.WishlistKeeper
	auth     port.Authenticator
	checkout port.CheckoutFlow
}

// App composes the stores and the TUI for one storefront session.
type App struct {
	ctx    context.Context
	cfg    config.Config
	stores stores
}

func New(ctx context.Context, cfg config.Config) App {
	app := App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStores()

	return app
}

func (app App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStores() {
	cartStorage := storage.NewCartFile(app.cfg.CartPath)
	auth := service.NewAuth(app.cfg.AuthLatency())

	app.stores = stores{
		catalog:  catalog.NewStatic(),
		cart:     service.NewCart(cartStorage),
		wishlist: service.NewWishlist(),
		auth:     auth,
		checkout: service.NewCheckout(auth),
	}
}

// Run drives the TUI until the user quits or ctx is canceled.
func (app App) Run() error {
	const op = "App.Run"

	slog.Info("storefront is running")

	model := tui.New(tui.Options{
		Context:   app.ctx,
		Catalog:   app.stores.catalog,
		Cart:      app.stores.cart,
		Wishlist:  app.stores.wishlist,
		Auth:      app.stores.auth,
		Checkout:  app.stores.checkout,
		ThemeName: app.cfg.Theme,
		PrefsPath: app.cfg.PrefsPath,
	})

	p := tea.NewProgram(model, tea.WithContext(app.ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("storefront is closed")
	return nil
}
