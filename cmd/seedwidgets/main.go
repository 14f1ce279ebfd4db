package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
)

// Seeds the news-tickers and sport-banners collections. Safe to re-run:
// duplicate IDs are skipped, not overwritten.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Seeding widget collections")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.New(ctx, &cfg.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer db.Close(ctx)

	tickers := store.NewTickerService(db)
	seeded, skipped := 0, 0

	sampleTickers := []models.Ticker{
		{
			ID:     "seed-ticker-enrollment",
			Text:   "Fall enrollment opens Monday at 8 AM — check your appointment time on WebReg",
			Active: true,
		},
		{
			ID:      "seed-ticker-blood-drive",
			Text:    "Blood drive on Library Walk through Friday",
			LinkURL: "https://tritontory.example/events/blood-drive",
			Active:  true,
		},
		{
			ID:     "seed-ticker-retired",
			Text:   "Winter parking permit sales have ended",
			Active: false,
		},
	}
	for _, t := range sampleTickers {
		t := t
		switch err := tickers.CreateTicker(ctx, &t); {
		case err == nil:
			seeded++
		case errors.Is(err, store.ErrDuplicate):
			skipped++
		default:
			logger.Fatal("Ticker insert failed", zap.String("id", t.ID), zap.Error(err))
		}
	}

	sampleBanners := []models.SportBanner{
		{
			ID:       "seed-banner-basketball",
			Title:    "Tritons vs. UC Irvine",
			Subtitle: "Men's basketball, Saturday 7 PM at LionTree Arena",
			LinkURL:  "https://tritontory.example/sports/basketball",
			Active:   true,
		},
		{
			ID:       "seed-banner-swim",
			Title:    "Swim & Dive hosts conference championships",
			Subtitle: "All week at Canyonview Pool",
			Active:   true,
		},
	}
	for _, b := range sampleBanners {
		b := b
		switch err := tickers.CreateSportBanner(ctx, &b); {
		case err == nil:
			seeded++
		case errors.Is(err, store.ErrDuplicate):
			skipped++
		default:
			logger.Fatal("Banner insert failed", zap.String("id", b.ID), zap.Error(err))
		}
	}

	logger.Info("Seed complete", zap.Int("seeded", seeded), zap.Int("skipped", skipped))
}
