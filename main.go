package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	auction "auction-registry/internal/auctionService"
	"auction-registry/internal/config"
	"auction-registry/internal/repository"
	"auction-registry/internal/server"
	"auction-registry/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLogLevel(cfg.LogLevel)

	store := repository.NewMemoryAuctionStore()
	users := repository.NewMemoryUserDirectory()
	registry := auction.NewAuctionService(store, users)

	if cfg.SeedDemoData {
		seedDemoData(registry)
	}

	router := server.SetupRouter(registry)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down auction server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown error", map[string]any{"error": err.Error()})
	}
}

// seedDemoData populates the registry with sample users, auctions and bids
func seedDemoData(registry *auction.AuctionService) {
	users := []struct {
		username string
		email    string
		isSeller bool
	}{
		{"alice", "alice@email.com", true},
		{"bob", "bob@email.com", false},
		{"charlie", "charlie@email.com", false},
		{"diana", "diana@email.com", true},
	}
	for _, u := range users {
		if err := registry.RegisterUser(u.username, u.email, u.isSeller); err != nil {
			utils.Warn("demo seed: register user failed", map[string]any{"username": u.username, "error": err.Error()})
		}
	}

	auctions := []struct {
		itemName        string
		description     string
		seller          string
		startingPrice   float64
		bidIncrement    float64
		durationMinutes int64
	}{
		{"Vintage Watch", "Beautiful vintage Rolex watch from 1960s", "alice", 500, 25, 60},
		{"Gaming Laptop", "High-performance gaming laptop with RTX 4080", "diana", 1200, 50, 120},
		{"Art Painting", "Original oil painting by local artist", "alice", 200, 15, 90},
		{"Antique Vase", "Ming dynasty style ceramic vase", "diana", 300, 20, 150},
	}
	for _, a := range auctions {
		if _, err := registry.CreateAuction(a.itemName, a.description, a.seller, a.startingPrice, a.bidIncrement, a.durationMinutes); err != nil {
			utils.Warn("demo seed: create auction failed", map[string]any{"item_name": a.itemName, "error": err.Error()})
		}
	}

	bids := []struct {
		auctionID int64
		bidder    string
		amount    float64
	}{
		{1, "bob", 525},
		{1, "charlie", 550},
		{2, "bob", 1250},
		{3, "charlie", 215},
	}
	for _, b := range bids {
		if _, err := registry.PlaceBid(b.auctionID, b.bidder, b.amount); err != nil {
			utils.Warn("demo seed: place bid failed", map[string]any{"auction_id": b.auctionID, "error": err.Error()})
		}
	}

	utils.Info("demo data seeded", map[string]any{"users": len(users), "auctions": len(auctions), "bids": len(bids)})
}
