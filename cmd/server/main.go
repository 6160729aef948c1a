package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/danielfranchi555/padelAdministration/internal/config"
	"github.com/danielfranchi555/padelAdministration/internal/handler"
	"github.com/danielfranchi555/padelAdministration/internal/ledger"
	"github.com/danielfranchi555/padelAdministration/internal/queue"
	"github.com/danielfranchi555/padelAdministration/internal/router"
	"github.com/danielfranchi555/padelAdministration/internal/store"
)

func main() {
	// Load a .env file when present; real environments set vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	pricing, err := config.LoadPricing(cfg.PricingFile)
	if err != nil {
		log.Fatalf("pricing: %v", err)
	}

	// Redis keeps the session snapshot between restarts.  Without a
	// reachable server the ledger simply runs memory-only.
	var st store.Store
	if client := config.NewRedisClient(); client != nil {
		st = store.NewRedisStore(client, cfg.SnapshotPrefix)
	} else {
		log.Printf("redis unavailable, running with in-memory snapshots only")
		st = store.NewMemoryStore()
	}

	led := ledger.New(pricing, st)
	snap, err := st.Load(context.Background())
	if err != nil {
		log.Printf("snapshot load failed, starting empty: %v", err)
	} else {
		led.Restore(snap)
		log.Printf("restored %d matches and %d payments", len(snap.Matches), len(snap.Payments))
	}

	// Background consumer mirrors recorded payments to logs/payments.log.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewMatchHandler(led, pricing),
		handler.NewPaymentHandler(led),
		handler.NewReportHandler(led),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
