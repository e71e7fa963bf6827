package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/doeshing/xterm-go/internal/application/autocorrect"
	"github.com/doeshing/xterm-go/internal/application/classify"
	configapp "github.com/doeshing/xterm-go/internal/application/config"
	"github.com/doeshing/xterm-go/internal/application/dispatch"
	"github.com/doeshing/xterm-go/internal/application/doctor"
	"github.com/doeshing/xterm-go/internal/application/history"
	"github.com/doeshing/xterm-go/internal/application/session"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/infrastructure/config"
	"github.com/doeshing/xterm-go/internal/infrastructure/directory"
	"github.com/doeshing/xterm-go/internal/infrastructure/executor"
	"github.com/doeshing/xterm-go/internal/infrastructure/nlp"
	"github.com/doeshing/xterm-go/internal/infrastructure/sysinfo"
	"github.com/doeshing/xterm-go/internal/pkg/logger"
	"github.com/doeshing/xterm-go/internal/ports"
)

// Options controls container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
// Terminal-facing pieces (reader, renderer, prompter) are attached by the
// cli layer once it knows what kind of terminal it is talking to.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.ZapLogger
	SessionID      string
	History        *history.Store
	SessionService *session.Service
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := configapp.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	baseLog, err := logger.New(logger.Options{
		File:    cfg.Logging.File,
		Level:   cfg.Logging.Level,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	sessionID := uuid.NewString()
	log := baseLog.With(map[string]interface{}{"session_id": sessionID})

	icons := classify.NewIconSet(cfg.Icons)
	store := history.NewStore(cfg.History.Size)
	changer := directory.NewOSChanger()
	shellExecutor := executor.NewLocalExecutor(cfg.Execution.ResolvedShell(), cfg.Execution.UsePTY)
	neofetch := sysinfo.NewNeofetch("")

	var engine *autocorrect.Engine
	if cfg.Autocorrect.Enabled {
		engine = autocorrect.NewEngine(cfg.Autocorrect.Threshold, log)
	}

	dispatcher := &dispatch.Dispatcher{
		Directory:  changer,
		Executor:   shellExecutor,
		Analyzer:   nlp.NewAnalyzer(),
		SystemInfo: neofetch,
		Classifier: classify.NewClassifier(icons),
		Logger:     log,
	}

	sessionService := &session.Service{
		Directory:   changer,
		History:     store,
		Autocorrect: engine,
		Dispatcher:  dispatcher,
		Logger:      log,
		HomeIcon:    icons.Lookup(cfg.Prompt.HomeIconKey),
		Toolbar:     cfg.Prompt.Toolbar,
		ShowBanner:  cfg.Prompt.ShowBanner,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Directory:      changer,
		SystemInfo:     neofetch,
		Shell:          shellExecutor.Shell(),
	}

	log.Debug("container ready", map[string]interface{}{
		"config":  cfgLoader.Path(),
		"shell":   shellExecutor.Shell(),
		"use_pty": cfg.Execution.UsePTY,
	})

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         baseLog,
		SessionID:      sessionID,
		History:        store,
		SessionService: sessionService,
		DoctorService:  doctorService,
	}, nil
}

// Close flushes and releases the session log.
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	c.Logger.Info("session log closed", map[string]interface{}{"session_id": c.SessionID})
	return c.Logger.Close()
}
