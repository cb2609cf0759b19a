package main

import (
	"context"
	"time"

	httpadapter "github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/adapter/http"
	metricsinmem "github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/adapter/metrics/inmemory"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/adapter/repo/memory"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/adapter/scheduler"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/dose"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/status"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/tick"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/config"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rs/xid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	cfg.ApplyLogLevel()

	seed := cfg.ResolveSeed()
	h, runner, runID, err := buildApp(cfg, seed)
	if err != nil {
		hlog.Fatalf("build app: %v", err)
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	if cfg.Autostart {
		ctx, cancel := context.WithCancel(context.Background())
		s.OnShutdown = append(s.OnShutdown, func(context.Context) { cancel() })
		go runner.Run(ctx)
	}

	hlog.Infof("hydroponics server listening on %s (run %s, seed %d, tick every %s, autostart=%t)",
		cfg.ListenAddr, runID, seed, cfg.TickInterval, cfg.Autostart)
	s.Spin()
}

// buildApp wires a fresh in-memory environment seeded with the initial
// readings and returns the HTTP handler and scheduler that share it.
func buildApp(cfg config.Config, seed uint64) (httpadapter.Handler, scheduler.Runner, string, error) {
	engine, err := hydroponics.NewEngine(hydroponics.LettuceProfile(), hydroponics.NewSeededSource(seed))
	if err != nil {
		return httpadapter.Handler{}, scheduler.Runner{}, "", err
	}

	store := memory.NewStore()
	runID := xid.New().String()
	store.SeedEnvironment(ports.EnvironmentRecord{
		RunID:     runID,
		State:     hydroponics.InitialState(),
		Version:   1,
		UpdatedAt: time.Now(),
	})
	repo := memory.NewEnvironmentRepo(store)
	txManager := memory.NewTxManager(store)
	kpiRecorder := metricsinmem.NewRecorder()

	tickUC := tick.UseCase{
		TxManager: txManager,
		Repo:      repo,
		Engine:    engine,
		Metrics:   kpiRecorder,
		Now:       time.Now,
	}
	h := httpadapter.Handler{
		TickUC:   tickUC,
		StatusUC: status.UseCase{TxManager: txManager, Repo: repo, Profile: engine.Profile()},
		DoseUC: dose.UseCase{
			TxManager: txManager,
			Repo:      repo,
			Engine:    engine,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		KPI:         kpiRecorder,
		AllowOrigin: cfg.AllowOrigin,
	}
	return h, scheduler.Runner{Tick: tickUC, Interval: cfg.TickInterval}, runID, nil
}
