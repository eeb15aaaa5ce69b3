package auction

import (
	"fmt"
	"time"

	"auction-registry/internal/models"
	"auction-registry/internal/repository"
)

// AuctionService composes the auction store and the user directory into
// the public operation surface of the registry. Every remote-facing
// operation enters here; the store's per-auction locking makes each
// check-and-mutate atomic, and user counters are bumped only after the
// triggering operation has succeeded.
type AuctionService struct {
	store     repository.AuctionStore
	users     repository.UserDirectory
	startTime time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, users repository.UserDirectory) *AuctionService {
	return &AuctionService{
		store:     store,
		users:     users,
		startTime: time.Now().UTC(),
	}
}

// CreateAuction lists a new auction and credits the seller's auction
// counter. The auction is visible as soon as the store insert completes;
// the counter is informational and may lag a concurrent reader.
func (s *AuctionService) CreateAuction(itemName, description, sellerUsername string, startingPrice, bidIncrement float64, durationMinutes int64) (models.Auction, error) {
	created := s.store.Create(itemName, description, sellerUsername, startingPrice, bidIncrement, durationMinutes)
	s.users.IncrementAuctionCount(sellerUsername)
	return created, nil
}

// ActiveAuctions returns all still-open auctions in creation order
func (s *AuctionService) ActiveAuctions() ([]models.Auction, error) {
	return s.store.ListOpen(), nil
}

// Auction returns a snapshot of a single auction
func (s *AuctionService) Auction(auctionID int64) (models.Auction, error) {
	a, err := s.store.Get(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	return a, nil
}

// CloseAuction closes an auction manually. The returned bool is false if
// the auction was already closed, which is not an error.
func (s *AuctionService) CloseAuction(auctionID int64) (bool, error) {
	closed, err := s.store.Close(auctionID)
	if err != nil {
		return false, fmt.Errorf("service: failed to close auction %d: %w", auctionID, err)
	}
	return closed, nil
}

// PlaceBid records a bid for a bidder. The bidder's counter is touched
// only if the bid was accepted.
func (s *AuctionService) PlaceBid(auctionID int64, bidderUsername string, amount float64) (models.Bid, error) {
	bid, err := s.store.PlaceBid(auctionID, bidderUsername, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %d by %s: %w", auctionID, bidderUsername, err)
	}

	s.users.IncrementBidCount(bidderUsername)
	return bid, nil
}

// BidsForAuction returns an auction's bid history in acceptance order
func (s *AuctionService) BidsForAuction(auctionID int64) ([]models.Bid, error) {
	bids, err := s.store.History(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %d: %w", auctionID, err)
	}
	return bids, nil
}

// HighestBid returns the highest accepted bid for an auction
func (s *AuctionService) HighestBid(auctionID int64) (models.Bid, error) {
	bid, err := s.store.HighestBid(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get highest bid for auction %d: %w", auctionID, err)
	}
	return bid, nil
}

// RegisterUser registers a new user. Duplicate usernames are reported,
// not fatal.
func (s *AuctionService) RegisterUser(username, email string, isSeller bool) error {
	if err := s.users.Register(username, email, isSeller); err != nil {
		return fmt.Errorf("service: failed to register user %s: %w", username, err)
	}
	return nil
}

// UserInfo returns a snapshot of a user's profile and counters
func (s *AuctionService) UserInfo(username string) (models.User, error) {
	u, err := s.users.Lookup(username)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", username, err)
	}
	return u, nil
}

// AuctionsByUser returns all auctions listed by a seller
func (s *AuctionService) AuctionsByUser(sellerUsername string) ([]models.Auction, error) {
	return s.store.ByUser(sellerUsername), nil
}

// BidsByUser returns all bids placed by a bidder across every auction
func (s *AuctionService) BidsByUser(bidderUsername string) ([]models.Bid, error) {
	return s.store.BidsByUser(bidderUsername), nil
}

// Status assembles an advisory snapshot of registry-wide counters. There
// is no atomicity across the sub-counts; the report is not used for
// admission decisions.
func (s *AuctionService) Status() (models.StatusReport, error) {
	return models.StatusReport{
		ServerStartTime: s.startTime,
		CurrentTime:     time.Now().UTC(),
		TotalAuctions:   s.store.Count(),
		ActiveAuctions:  s.store.OpenCount(),
		TotalBids:       s.store.TotalBidCount(),
		RegisteredUsers: s.users.Count(),
		State:           "RUNNING",
	}, nil
}

// ActiveAuctionCount returns the number of still-open auctions
func (s *AuctionService) ActiveAuctionCount() (int, error) {
	return s.store.OpenCount(), nil
}

// TotalBidCount returns the number of accepted bids across all auctions
func (s *AuctionService) TotalBidCount() (int, error) {
	return s.store.TotalBidCount(), nil
}

// RegisteredUsers returns all registered usernames in registration order
func (s *AuctionService) RegisteredUsers() ([]string, error) {
	return s.users.ListUsernames(), nil
}
