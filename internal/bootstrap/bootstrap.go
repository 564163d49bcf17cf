package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	domainauth "portfolio-cms/internal/domain/auth"
	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/contact"
	"portfolio-cms/internal/domain/projects"
	"portfolio-cms/internal/domain/settings"
	"portfolio-cms/internal/domain/skills"
	"portfolio-cms/internal/domain/users"
	platformconfig "portfolio-cms/internal/platform/config"
	platformerrors "portfolio-cms/internal/platform/errors"
	platformlogging "portfolio-cms/internal/platform/logging"
	platformmail "portfolio-cms/internal/platform/mail"
	platformstorage "portfolio-cms/internal/platform/storage"
	httptransport "portfolio-cms/internal/transport/http"
	"portfolio-cms/internal/transport/http/webapi"
)

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	config      *platformconfig.Config
	configPath  string
	logger      *platformlogging.Logger
	db          *gorm.DB
	userRepo    *users.Repository
	authManager *domainauth.Manager
	notifier    *platformmail.Notifier
}

// Run drives the whole server lifecycle: configuration, storage, seeding,
// route registration and graceful shutdown.
func Run(ctx context.Context) error {
	state := &appState{}

	steps := InitGraph()
	if err := executeInitSteps(ctx, steps, state); err != nil {
		return err
	}

	config := state.config
	logger := state.logger
	if config == nil || logger == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"config/logger not initialised",
		)
	}
	defer logger.Close()

	logBootstrapGraph(steps, logger)

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if _, err := startHTTPServer(state, group, groupCtx); err != nil {
		cancel()
		return err
	}

	if err := waitForShutdown(signalCtx, cancel, logger, group); err != nil {
		return err
	}

	logger.InfoTag("boot", "server stopped")
	return nil
}

func logBootstrapGraph(steps []initStep, logger *platformlogging.Logger) {
	if logger == nil {
		return
	}
	for _, step := range steps {
		logger.InfoTag("boot", "%s done", step.Title)
	}
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"execute init steps",
			"nil bootstrap state",
		)
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if step.Execute == nil {
			return platformerrors.New(
				platformerrors.KindBootstrap,
				step.ID,
				"missing execute function",
			)
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}

			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "storage:open",
			Title:     "Open database",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      platformerrors.KindStorage,
			Execute:   openStorageStep,
		},
		{
			ID:        "storage:seed",
			Title:     "Seed admin account and defaults",
			DependsOn: []string{"storage:open"},
			Kind:      platformerrors.KindStorage,
			Execute:   seedStep,
		},
		{
			ID:        "auth:init",
			Title:     "Initialise auth manager",
			DependsOn: []string{"storage:seed"},
			Kind:      platformerrors.KindAuth,
			Execute:   initAuthStep,
		},
		{
			ID:        "mail:init",
			Title:     "Initialise mail notifier",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      platformerrors.KindMail,
			Execute:   initMailStep,
		},
	}
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader("config.yaml").Load()
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindConfig, "config:load", "failed to load configuration", err)
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	if state.config == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"logging:init",
			"config not loaded",
		)
	}

	logger, err := platformlogging.New(platformlogging.Config{
		Level:    state.config.Log.Level,
		Dir:      state.config.Log.Dir,
		Filename: state.config.Log.File,
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "logging:init", "failed to initialise logging", err)
	}
	state.logger = logger

	logger.InfoTag("boot", "logging ready [%s] config=%s", state.config.Log.Level, state.configPath)
	return nil
}

func openStorageStep(_ context.Context, state *appState) error {
	db, err := platformstorage.Open(state.config.Database)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "storage:open", "failed to open database", err)
	}
	state.db = db
	state.logger.InfoTag("boot", "database ready at %s", state.config.Database.Path)
	return nil
}

func seedStep(ctx context.Context, state *appState) error {
	state.userRepo = users.NewRepository(state.db)
	seed := users.AdminSeed{
		Username: state.config.Auth.Admin.Username,
		Password: state.config.Auth.Admin.Password,
		Email:    state.config.Auth.Admin.Email,
	}
	if err := state.userRepo.EnsureAdmin(ctx, seed, state.logger); err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "storage:seed", "failed to seed admin account", err)
	}

	if err := settings.NewRepository(state.db).EnsureDefaults(ctx, state.logger); err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "storage:seed", "failed to seed default settings", err)
	}
	return nil
}

func initAuthStep(_ context.Context, state *appState) error {
	codec := domainauth.NewCodec(domainauth.CodecConfig{
		Secret: state.config.Auth.Secret,
		TTL:    state.config.Auth.TTL.Std(),
	})
	state.authManager = domainauth.NewManager(state.userRepo, codec, state.logger)
	return nil
}

func initMailStep(_ context.Context, state *appState) error {
	state.notifier = platformmail.NewNotifier(state.config.Mail, state.logger)
	if state.notifier.Enabled() {
		state.logger.InfoTag("mail", "contact notifications go to %s", state.config.Mail.To)
	} else {
		state.logger.InfoTag("mail", "notifications disabled, messages are stored only")
	}
	return nil
}

func startHTTPServer(state *appState, g *errgroup.Group, groupCtx context.Context) (*http.Server, error) {
	config := state.config
	logger := state.logger

	router, err := httptransport.Build(httptransport.Options{
		Config: config,
		Logger: logger,
		Gate:   httptransport.NewRequestGate(state.authManager.Codec(), logger),
	})
	if err != nil {
		return nil, err
	}

	router.Engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") {
			c.JSON(http.StatusNotFound, httptransport.APIResponse{
				Success: false,
				Data:    gin.H{},
				Message: "not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		if dir := config.Web.StaticDir; dir != "" {
			c.File(dir + "/index.html")
			return
		}
		c.Status(http.StatusNotFound)
	})

	projectRepo := projects.NewRepository(state.db)
	blogRepo := blog.NewRepository(state.db)
	contactRepo := contact.NewRepository(state.db)

	services := []webapi.Service{
		webapi.NewAuthService(state.authManager, state.userRepo, logger),
		webapi.NewProjectService(projectRepo, logger),
		webapi.NewBlogService(blogRepo, logger),
		webapi.NewSkillService(skills.NewRepository(state.db), logger),
		webapi.NewSettingService(settings.NewRepository(state.db), logger),
		webapi.NewContactService(contactRepo, state.notifier, logger),
		webapi.NewAdminService(projectRepo, blogRepo, contactRepo, logger),
	}
	for _, svc := range services {
		if err := svc.Start(groupCtx, router.API, router.Secured); err != nil {
			return nil, platformerrors.Wrap(platformerrors.KindTransport, "http:register-routes", "failed to register service routes", err)
		}
	}

	addr := net.JoinHostPort(config.Server.IP, strconv.Itoa(config.Server.Port))
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router.Engine,
	}

	g.Go(func() error {
		logger.InfoTag("HTTP", "listening on http://%s", addr)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("HTTP", "shutdown failed: %v", err)
			} else {
				logger.InfoTag("HTTP", "server shut down cleanly")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("HTTP", "server failed: %v", err)
			return err
		}
		return nil
	})

	return httpServer, nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *platformlogging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.InfoTag("boot", "received signal %v, cleaning up", context.Cause(ctx))

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("boot", "error during shutdown: %v", err)
			return err
		}
		logger.InfoTag("boot", "all services stopped")
	case <-time.After(15 * time.Second):
		logger.ErrorTag("boot", "shutdown timed out, forcing exit")
		return errors.New("shutdown timed out")
	}
	return nil
}
