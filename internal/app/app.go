package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/config"
	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/fines"
	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/notify"
	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/scheduler"
	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/store"
	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/traininglog"
	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/userdir"
)

// App owns the team-management core: activity store, fine engine, scan
// scheduler and collaborators. The surrounding UI surface drives mutations
// through the accessors; App itself only runs the scan loop and a healthz
// endpoint.
type App struct {
	cfg      config.Config
	log      *zap.Logger
	loc      *time.Location
	store    *store.Store
	engine   *fines.Engine
	sched    *scheduler.Scheduler
	training *traininglog.Log
	users    *userdir.Directory
	httpSrv  *http.Server
}

// New wires the core together from configuration.
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	st := store.New(log)
	training := traininglog.New(log)
	st.OnTrainingAttendance(training.Record)

	users := userdir.New()
	engine := fines.New(st, fines.DefaultRules(), log)
	if cfg.BotToken != "" {
		tg, err := notify.New(cfg.BotToken, cfg.ChatID, users, log)
		if err != nil {
			return nil, err
		}
		engine.OnFineIssued(tg.FineIssued)
		log.Info("telegram fine notifications enabled", zap.Int64("chat", cfg.ChatID))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{
		cfg:      cfg,
		log:      log,
		loc:      loc,
		store:    st,
		engine:   engine,
		sched:    scheduler.New(engine, log, cfg.ScanInterval),
		training: training,
		users:    users,
		httpSrv:  srv,
	}, nil
}

// Store is the activity/participation store.
func (a *App) Store() *store.Store { return a.store }

// Fines is the automatic fine engine.
func (a *App) Fines() *fines.Engine { return a.engine }

// TrainingLog is the personal training log collaborator.
func (a *App) TrainingLog() *traininglog.Log { return a.training }

// Users is the user directory collaborator.
func (a *App) Users() *userdir.Directory { return a.users }

// Location is the club timezone; activity dates are built in it.
func (a *App) Location() *time.Location { return a.loc }

// Run starts the scan loop and healthz server and blocks until a shutdown
// signal arrives or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting lagapp core",
		zap.String("http", a.cfg.HTTPAddr),
		zap.Duration("scan_interval", a.cfg.ScanInterval),
		zap.String("timezone", a.cfg.Timezone),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	go a.sched.Run(ctx)

	<-ctx.Done()
	a.log.Info("shutdown signal received")

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err := a.httpSrv.Shutdown(shCtx)
	cancel()
	if err != nil {
		a.log.Warn("http server shutdown error", zap.Error(err))
	}
	return nil
}
