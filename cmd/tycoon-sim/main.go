// Command tycoon-sim runs a scripted multi-week laundromat simulation against
// the engine: it seeds capital, hires, buys machines and supplies, borrows,
// negotiates, and lets the weekly scheduler issue bills and chase loans. The
// final balance is cross-checked against a full rebuild from the event log.
package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/sudsim/tycoon-engine-go/busmetrics"
	"github.com/sudsim/tycoon-engine-go/command"
	"github.com/sudsim/tycoon-engine-go/engine"
	"github.com/sudsim/tycoon-engine-go/eventstore"
	"github.com/sudsim/tycoon-engine-go/eventstore/oteladapters"
	"github.com/sudsim/tycoon-engine-go/partners"
	"github.com/sudsim/tycoon-engine-go/reaction"
)

// Config holds the simulation knobs, loaded from the environment.
type Config struct {
	AgentID         string  `env:"TYCOON_AGENT_ID"         envDefault:"player-1"`
	Weeks           int     `env:"TYCOON_WEEKS"            envDefault:"16"`
	Seed            int64   `env:"TYCOON_SEED"             envDefault:"42"`
	StartingBalance float64 `env:"TYCOON_STARTING_BALANCE" envDefault:"5000"`
	RevenuePerSlot  float64 `env:"TYCOON_REVENUE_PER_SLOT" envDefault:"150"`
	MetricsAddr     string  `env:"TYCOON_METRICS_ADDR"     envDefault:""`
	OTelEnabled     bool    `env:"TYCOON_OTEL_ENABLED"     envDefault:"false"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	logger := newLogger(cfg)
	ctx := context.Background()

	vendor := partners.NewSupplyVendor(command.DefaultVendorID, rand.New(rand.NewSource(cfg.Seed)))
	notifier := partners.NewSlogNotifier(slog.Default())

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithVendor(vendor),
		engine.WithNotifier(notifier),
		engine.WithReactions(
			reaction.NewNegotiationReaction(vendor),
			reaction.NewCreditReportingReaction(),
			reaction.NewNotificationReaction(),
		),
	}

	if cfg.OTelEnabled {
		meter := otel.GetMeterProvider().Meter("tycoon-sim")
		opts = append(opts,
			engine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
			engine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("tycoon-sim")),
		)
	}

	eng, err := engine.NewEngine(opts...)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	busMetrics := busmetrics.New(prometheus.DefaultRegisterer)
	if err := eng.SubscribeAll(busMetrics.Subscriber()); err != nil {
		log.Fatalf("failed to subscribe metrics observer: %v", err)
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	runScript(ctx, eng, cfg, logger)

	report(eng, cfg, logger)
}

func newLogger(cfg Config) eventstore.Logger {
	if cfg.OTelEnabled {
		return oteladapters.NewSlogLogger("tycoon-sim")
	}

	return oteladapters.NewSlogLoggerWithHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
}

func serveMetrics(addr string, logger eventstore.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err.Error())
	}
}

// runScript plays a fixed opening book, then lets the weekly routine run:
// scheduler, revenue, bill payments, and loan installments.
func runScript(ctx context.Context, eng *engine.Engine, cfg Config, logger eventstore.Logger) {
	agent := cfg.AgentID

	if _, err := eng.Deposit(ctx, agent, cfg.StartingBalance, "seed capital", 0); err != nil {
		log.Fatalf("failed to seed capital: %v", err)
	}

	submit := func(tick int, action string, payload map[string]any) {
		if _, err := eng.Submit(ctx, action, agent, payload, tick); err != nil {
			logger.Error("action submission failed", "action", action, "tick", tick, "error", err.Error())
		}
	}

	for tick := 1; tick <= cfg.Weeks; tick++ {
		if _, err := eng.AdvanceTick(ctx, agent, tick); err != nil {
			logger.Error("scheduler failed", "tick", tick, "error", err.Error())
		}

		switch tick {
		case 1:
			submit(tick, command.ActionHireStaff, map[string]any{"role": "cleaner"})
			submit(tick, command.ActionBuyMachine, map[string]any{"model": "standard_washer"})
			submit(tick, command.ActionBuyMachine, map[string]any{"model": "eco_dryer"})
			submit(tick, command.ActionBuySupplies, map[string]any{"item": "detergent", "quantity": 20})
			submit(tick, command.ActionBuySupplies, map[string]any{"item": "machine_parts", "quantity": 3})
		case 2:
			submit(tick, command.ActionApplyLoan, map[string]any{"product": "operating_credit", "amount": 2000})
		case 3:
			submit(tick, command.ActionRequestNegotiation, map[string]any{"item": "detergent"})
			submit(tick, command.ActionLaunchMarketing, map[string]any{"channel": "flyers", "cost": 250})
		case 5:
			submit(tick, command.ActionResolveDilemma, map[string]any{
				"dilemma_id": "leaky-hose",
				"choice":     "repair honestly",
				"effects":    map[string]any{"money": -100, "reputation": 5},
			})
		case 6:
			submit(tick, command.ActionMaintainMachines, nil)
		}

		stateNow := eng.GetState(agent)

		revenue := cfg.RevenuePerSlot * float64(len(stateNow.Machines))
		if revenue > 0 {
			if _, err := eng.Deposit(ctx, agent, revenue, "weekly customer revenue", tick); err != nil {
				logger.Error("revenue deposit failed", "tick", tick, "error", err.Error())
			}
		}

		for _, bill := range stateNow.Bills {
			if !bill.Paid {
				submit(tick, command.ActionPayBill, map[string]any{"bill_id": bill.BillID})
			}
		}

		for _, account := range stateNow.Credit.Accounts {
			if account.Outstanding > 0 && account.NextDueTick <= tick {
				submit(tick, command.ActionMakeLoanPayment, map[string]any{"loan_id": account.LoanID})
			}
		}

		if tick%command.QuarterWeeks == 0 {
			submit(tick, command.ActionFileTaxes, nil)
		}
	}
}

func report(eng *engine.Engine, cfg Config, logger eventstore.Logger) {
	agent := cfg.AgentID
	live := eng.GetState(agent)

	rebuilt, err := eng.Rebuild(agent)
	if err != nil {
		log.Fatalf("rebuild failed: %v", err)
	}

	logger.Info("simulation finished",
		"agent_id", agent,
		"weeks", cfg.Weeks,
		"events", len(eng.GetHistory(agent)),
		"balance", live.Balance(),
		"rebuilt_balance", rebuilt.Balance(),
		"credit_score", live.Credit.Score,
		"social_score", live.Social.Total(),
		"staff", len(live.Staff),
		"machines", len(live.Machines),
		"inbox", len(live.Inbox),
	)

	if live.Balance() != rebuilt.Balance() {
		log.Fatalf("rebuild mismatch: live balance %.2f, rebuilt %.2f", live.Balance(), rebuilt.Balance())
	}
}
