package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-registry/internal/auctionService"
	"auction-registry/internal/repository"
)

func newBenchService() (*auction.AuctionService, *repository.MemoryAuctionStore) {
	store := repository.NewMemoryAuctionStore()
	users := repository.NewMemoryUserDirectory()
	return auction.NewAuctionService(store, users), store
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	svc, _ := newBenchService()

	for i := 0; i < b.N; i++ {
		_, err := svc.CreateAuction(fmt.Sprintf("item_%d", i), "independent benchmark auction",
			fmt.Sprintf("seller_%d", i), 50, 1, 60)
		if err != nil {
			b.Fatalf("failed to create auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := int64(i + 1)
		bidder := fmt.Sprintf("user_%d", i)
		amount := float64(51 + rand.Intn(100))
		if _, err := svc.PlaceBid(auctionID, bidder, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	svc, _ := newBenchService()

	created, err := svc.CreateAuction("shared_auction", "used to simulate many users bidding concurrently",
		"seller", 50, 1, 60)
	if err != nil {
		b.Fatalf("failed to create auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(created.AuctionID, bidder, float64(nextBid))
		}
	})
}

// Benchmark 3: ListOpen over a populated store (Read Path)
func Benchmark_ActiveAuctions(b *testing.B) {
	svc, _ := newBenchService()

	for i := 0; i < 500; i++ {
		_, err := svc.CreateAuction(fmt.Sprintf("item_%d", i), "read benchmark auction",
			"seller", 50, 1, 60)
		if err != nil {
			b.Fatalf("failed to create auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.ActiveAuctions(); err != nil {
				b.Fatalf("failed to list auctions: %v", err)
			}
		}
	})
}
