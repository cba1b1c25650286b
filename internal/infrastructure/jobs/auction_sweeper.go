package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/domain/usecase/auction"
)

// AuctionSweeper runs the auction lifecycle transitions on a schedule:
// activating scheduled auctions, ending expired ones and forfeiting
// winners whose payment deadline passed. A single sweep runs at a time;
// overlapping ticks are skipped.
type AuctionSweeper struct {
	engine  *auction.Engine
	logger  core.Logger
	cron    *cron.Cron
	spec    string
	timeout time.Duration
	running chan struct{}
}

// NewAuctionSweeper creates a sweeper with the given cron spec,
// e.g. "@every 1m".
func NewAuctionSweeper(engine *auction.Engine, logger core.Logger, spec string) *AuctionSweeper {
	return &AuctionSweeper{
		engine:  engine,
		logger:  logger,
		cron:    cron.New(),
		spec:    spec,
		timeout: 30 * time.Second,
		running: make(chan struct{}, 1),
	}
}

// Start registers the sweep job and starts the scheduler
func (s *AuctionSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Auction sweeper started", map[string]any{
		"spec": s.spec,
	})
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *AuctionSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Auction sweeper stopped", nil)
}

// RunOnce performs a single sweep immediately, used at startup to catch
// up on transitions missed while the process was down.
func (s *AuctionSweeper) RunOnce(ctx context.Context) {
	s.sweep(ctx)
}

func (s *AuctionSweeper) tick() {
	select {
	case s.running <- struct{}{}:
		defer func() { <-s.running }()
	default:
		s.logger.Warn("Skipping sweep, previous run still in progress", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.sweep(ctx)
}

func (s *AuctionSweeper) sweep(ctx context.Context) {
	activated := s.engine.SweepActivations(ctx)
	ended := s.engine.SweepEndings(ctx)
	forfeited := s.engine.SweepForfeitures(ctx)

	if activated+ended+forfeited > 0 {
		s.logger.Info("Auction sweep completed", map[string]any{
			"activated": activated,
			"ended":     ended,
			"forfeited": forfeited,
		})
	}
}
