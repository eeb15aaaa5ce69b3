package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-registry/internal/auctionerrors"
	model "auction-registry/internal/models"
)

//go:generate mockgen -source=auction_store.go -destination=mock_auction_store.go -package=repository
//go:generate mockgen -source=user_directory.go -destination=mock_user_directory.go -package=repository

// AuctionStore defines the auction and bid storage interface
type AuctionStore interface {
	Create(itemName, description, sellerUsername string, startingPrice, bidIncrement float64, durationMinutes int64) model.Auction
	Get(auctionID int64) (model.Auction, error)
	ListOpen() []model.Auction
	Close(auctionID int64) (bool, error)
	PlaceBid(auctionID int64, bidderUsername string, amount float64) (model.Bid, error)
	History(auctionID int64) ([]model.Bid, error)
	HighestBid(auctionID int64) (model.Bid, error)
	ByUser(sellerUsername string) []model.Auction
	BidsByUser(bidderUsername string) []model.Bid
	Count() int
	OpenCount() int
	TotalBidCount() int
}

// auctionEntry holds one auction and its bid history. entry.mu guards both,
// so the whole validate-and-mutate sequence for a single auction runs as
// one critical section while unrelated auctions proceed in parallel.
type auctionEntry struct {
	mu      sync.Mutex
	auction model.Auction
	bids    []model.Bid
}

// MemoryAuctionStore is a concurrency-safe in-memory implementation of
// AuctionStore. The store-level RWMutex only guards the id lookup map and
// insertion order; auction state is guarded per entry.
type MemoryAuctionStore struct {
	mu      sync.RWMutex
	entries map[int64]*auctionEntry // key: auctionID
	order   []int64                 // auctionIDs in creation order

	auctionIDs *IDAllocator
	bidIDs     *IDAllocator

	now func() time.Time
}

// NewMemoryAuctionStore creates a new in-memory auction store instance
func NewMemoryAuctionStore() *MemoryAuctionStore {
	return NewMemoryAuctionStoreWithClock(time.Now)
}

// NewMemoryAuctionStoreWithClock creates a store that reads the current
// time from the given clock. Used by tests to control expiration.
func NewMemoryAuctionStoreWithClock(now func() time.Time) *MemoryAuctionStore {
	return &MemoryAuctionStore{
		entries:    make(map[int64]*auctionEntry),
		auctionIDs: NewIDAllocator(),
		bidIDs:     NewIDAllocator(),
		now:        now,
	}
}

// Create allocates an id and inserts a new open auction. Creation always
// succeeds; seller existence and value positivity are not validated.
func (s *MemoryAuctionStore) Create(itemName, description, sellerUsername string, startingPrice, bidIncrement float64, durationMinutes int64) model.Auction {
	start := s.now().UTC()

	auction := model.Auction{
		AuctionID:         s.auctionIDs.Next(),
		ItemName:          itemName,
		Description:       description,
		SellerUsername:    sellerUsername,
		StartingPrice:     startingPrice,
		BidIncrement:      bidIncrement,
		CurrentHighestBid: startingPrice,
		StartTime:         start,
		EndTime:           start.Add(time.Duration(durationMinutes) * time.Minute),
		Status:            model.StatusOpen,
	}

	s.mu.Lock()
	s.entries[auction.AuctionID] = &auctionEntry{auction: auction}
	s.order = append(s.order, auction.AuctionID)
	s.mu.Unlock()

	return auction
}

// entry looks up the auction entry for an id
func (s *MemoryAuctionStore) entry(auctionID int64) (*auctionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return e, nil
}

// expireLocked transitions an open auction to closed once its end time has
// passed. There is no background timer; expiration is discovered lazily on
// every path that touches active status. Caller must hold e.mu.
func (s *MemoryAuctionStore) expireLocked(e *auctionEntry) bool {
	if e.auction.Status == model.StatusOpen && !s.now().Before(e.auction.EndTime) {
		e.auction.Status = model.StatusClosed
		return true
	}
	return false
}

// Get returns a snapshot of an auction, applying lazy expiration first
func (s *MemoryAuctionStore) Get(auctionID int64) (model.Auction, error) {
	e, err := s.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	s.expireLocked(e)
	return e.auction, nil
}

// ListOpen returns snapshots of all still-open auctions in creation order,
// expiring each due auction on the way
func (s *MemoryAuctionStore) ListOpen() []model.Auction {
	open := make([]model.Auction, 0)
	for _, e := range s.snapshotEntries() {
		e.mu.Lock()
		s.expireLocked(e)
		if e.auction.Status == model.StatusOpen {
			open = append(open, e.auction)
		}
		e.mu.Unlock()
	}
	return open
}

// Close transitions an open auction to closed. Returns false without error
// if the auction was already closed (including lazily-discovered expiry).
func (s *MemoryAuctionStore) Close(auctionID int64) (bool, error) {
	e, err := s.entry(auctionID)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s.expireLocked(e)
	if e.auction.Status == model.StatusClosed {
		return false, nil
	}
	e.auction.Status = model.StatusClosed
	return true, nil
}

// PlaceBid validates and records a bid against an auction. The deadline
// check, the status check, the minimum check and every resulting mutation
// happen under the auction's lock: a bid can never be both accepted and
// past the deadline, and no concurrent bid observes an intermediate state.
func (s *MemoryAuctionStore) PlaceBid(auctionID int64, bidderUsername string, amount float64) (model.Bid, error) {
	e, err := s.entry(auctionID)
	if err != nil {
		return model.Bid{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s.expireLocked(e)
	if e.auction.Status == model.StatusClosed {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	minimum := e.auction.MinimumBid()
	if amount < minimum {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID,
			&auctionerrors.BidTooLowError{Amount: amount, Minimum: minimum})
	}

	bid := model.Bid{
		BidID:          s.bidIDs.Next(),
		AuctionID:      auctionID,
		BidderUsername: bidderUsername,
		Amount:         amount,
		Timestamp:      s.now().UTC(),
	}

	e.bids = append(e.bids, bid)
	e.auction.CurrentHighestBid = amount
	e.auction.HighestBidder = bidderUsername
	e.auction.BidCount++

	return bid, nil
}

// History returns all bids for an auction in acceptance order
func (s *MemoryAuctionStore) History(auctionID int64) ([]model.Bid, error) {
	e, err := s.entry(auctionID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Bid(nil), e.bids...), nil
}

// HighestBid returns the bid with the maximum amount for an auction, ties
// broken by earliest acceptance. Acceptance order enforces strictly
// increasing amounts, so a tie here would signal a race.
func (s *MemoryAuctionStore) HighestBid(auctionID int64) (model.Bid, error) {
	e, err := s.entry(auctionID)
	if err != nil {
		return model.Bid{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.bids) == 0 {
		return model.Bid{}, fmt.Errorf("highest bid for auction %d: %w", auctionID, auctionerrors.ErrNoBids)
	}

	highest := e.bids[0]
	for _, b := range e.bids[1:] {
		if b.Amount > highest.Amount {
			highest = b
		}
	}
	return highest, nil
}

// ByUser returns snapshots of all auctions listed by a seller, in creation order
func (s *MemoryAuctionStore) ByUser(sellerUsername string) []model.Auction {
	auctions := make([]model.Auction, 0)
	for _, e := range s.snapshotEntries() {
		e.mu.Lock()
		if e.auction.SellerUsername == sellerUsername {
			auctions = append(auctions, e.auction)
		}
		e.mu.Unlock()
	}
	return auctions
}

// BidsByUser returns all bids placed by a bidder across every auction
func (s *MemoryAuctionStore) BidsByUser(bidderUsername string) []model.Bid {
	bids := make([]model.Bid, 0)
	for _, e := range s.snapshotEntries() {
		e.mu.Lock()
		for _, b := range e.bids {
			if b.BidderUsername == bidderUsername {
				bids = append(bids, b)
			}
		}
		e.mu.Unlock()
	}
	return bids
}

// Count returns the number of auctions ever created
func (s *MemoryAuctionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// OpenCount returns the number of still-open auctions, expiring due ones
// as a side effect
func (s *MemoryAuctionStore) OpenCount() int {
	count := 0
	for _, e := range s.snapshotEntries() {
		e.mu.Lock()
		s.expireLocked(e)
		if e.auction.Status == model.StatusOpen {
			count++
		}
		e.mu.Unlock()
	}
	return count
}

// TotalBidCount returns the number of accepted bids across all auctions
func (s *MemoryAuctionStore) TotalBidCount() int {
	total := 0
	for _, e := range s.snapshotEntries() {
		e.mu.Lock()
		total += len(e.bids)
		e.mu.Unlock()
	}
	return total
}

// snapshotEntries returns the entries in creation order without holding
// the store lock while per-entry locks are taken
func (s *MemoryAuctionStore) snapshotEntries() []*auctionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*auctionEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.entries[id])
	}
	return entries
}
