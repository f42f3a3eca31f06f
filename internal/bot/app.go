// Package bot wires the catalog, quiz engine, statistics and enrichment
// services into a Telegram bot on top of the shared core.
package bot

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"barbot/core/bootstrap"
	"barbot/core/logger"
	coretelegram "barbot/core/telegram"
	"barbot/core/telegram/commands"
	"barbot/core/telegram/helpers"
	"barbot/core/telegram/router"
	"barbot/core/telegram/state"
	"barbot/internal/catalog"
	"barbot/internal/enrich"
	"barbot/internal/quiz"
	"barbot/internal/stats"
)

// App holds the assembled bot.
type App struct {
	cfg     *AppConfig
	db      *sqlx.DB
	fsm     state.Manager
	catalog *catalog.Catalog
	quiz    *quiz.Engine
	stats   *stats.Service
	enrich  *enrich.Service
}

// New bootstraps infrastructure and assembles the application. Without a
// configured database the stats service runs on the in-memory repository.
func New(cfg *AppConfig) (*App, error) {
	var (
		db   *sqlx.DB
		repo stats.Repository
	)
	if cfg.HasDatabase() {
		res, err := bootstrap.Run(bootstrap.Options{
			Config:   cfg.CoreConfig(),
			Database: cfg.Database,
		})
		if err != nil {
			return nil, err
		}
		db = res.DB
		repo = stats.NewPostgresRepository(db)
	} else {
		if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
			return nil, fmt.Errorf("logger init failed: %w", err)
		}
		logger.Warn(context.Background(), "db", "db.disabled")
		repo = stats.NewMemoryRepository()
	}

	cat := catalog.Default()
	app := &App{
		cfg:     cfg,
		db:      db,
		fsm:     state.NewMemoryManager(),
		catalog: cat,
		quiz:    quiz.NewEngine(quiz.DefaultSets(), cat.Names(), nil),
		stats:   stats.NewService(repo),
		enrich:  enrich.NewService(enrich.NewWebSearcher(cfg.Enrichment, nil), cfg.Enrichment),
	}
	app.registerModeHandlers()
	return app, nil
}

func (a *App) registerModeHandlers() {
	state.RegisterHandler(ModeSearch, a.handleSearchText)
	state.RegisterHandler(ModeAdminLookup, a.handleAdminLookupText)
	for _, mode := range kindModes {
		state.RegisterHandler(mode, a.handleGameText)
	}
}

// TelegramRunOptions satisfies cmd.TelegramApp.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.registerCommands(reg)
	a.registerLabels(reg)
	a.registerCallbacks(reg)
	reg.SetTextFallback(a.handleFreeText)

	var routes []coretelegram.Route
	routes = append(routes, router.TextRoutes(a.fsm, reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		IsAdmin: a.cfg.IsAdmin,
		OnAdminReject: func(c tele.Context) error {
			return helpers.SendText(c, "Команда доступна только администраторам.")
		},
	})...)
	routes = append(routes, coretelegram.Route{Endpoint: tele.OnContact, Handler: a.handleContact})

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStop: func(context.Context, coretelegram.Runtime) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}, nil
}

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/ai", commands.Command{
		Handler:     a.handleSearchEnter,
		Description: "Поиск по брендам с онлайн-подсказками",
	})
	reg.RegisterCommand("/exit", commands.Command{
		Handler:     a.handleSearchExit,
		Description: "Выйти из режима поиска",
		Hidden:      true,
	})
	reg.RegisterCommand("/top", commands.Command{
		Handler:     a.handleTop,
		Description: "Топ игроков (админ)",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/finduser", commands.Command{
		Handler:     a.handleFindUser,
		Description: "Поиск пользователя (админ)",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) registerLabels(reg *coretelegram.Registry) {
	reg.RegisterLabel(LabelBack, a.handleBack)
	reg.RegisterLabel(LabelTests, a.handleTestsMenu)
	reg.RegisterLabel(LabelJager, a.brandByNameHandler("Jägermeister"))

	for label, category := range categoryLabels {
		reg.RegisterLabel(label, a.categoryHandler(category))
	}
	for _, entry := range a.catalog.Names() {
		reg.RegisterLabel(entry, a.brandByNameHandler(entry))
	}
	for label, setID := range testLabels {
		reg.RegisterLabel(label, a.gameStartHandler(setID))
	}
}

func (a *App) registerCallbacks(reg *coretelegram.Registry) {
	_ = reg.RegisterCallback("ai:exit", a.handleSearchExitButton)
}

// profileOf snapshots sender identity for the stats service.
func profileOf(c tele.Context) stats.Profile {
	u := c.Sender()
	if u == nil {
		return stats.Profile{}
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return stats.Profile{
		TelegramID:  u.ID,
		Username:    u.Username,
		DisplayName: name,
	}
}
