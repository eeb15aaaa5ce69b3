package models

import "time"

// AuctionStatus is the lifecycle state of an auction. Closed is terminal.
type AuctionStatus string

const (
	StatusOpen   AuctionStatus = "OPEN"
	StatusClosed AuctionStatus = "CLOSED"
)

// Auction represents a sellable listing with a time window and bid state
type Auction struct {
	AuctionID         int64         `json:"auction_id"`
	ItemName          string        `json:"item_name"`
	Description       string        `json:"description"`
	SellerUsername    string        `json:"seller_username"`
	StartingPrice     float64       `json:"starting_price"`
	BidIncrement      float64       `json:"bid_increment"`
	CurrentHighestBid float64       `json:"current_highest_bid"`
	HighestBidder     string        `json:"highest_bidder,omitempty"`
	StartTime         time.Time     `json:"start_time"`
	EndTime           time.Time     `json:"end_time"`
	Status            AuctionStatus `json:"status"`
	BidCount          int64         `json:"bid_count"`
}

// MinimumBid returns the lowest amount the next bid must reach to be accepted
func (a Auction) MinimumBid() float64 {
	return a.CurrentHighestBid + a.BidIncrement
}

// Bid represents one accepted offer against an auction
type Bid struct {
	BidID          int64     `json:"bid_id"`
	AuctionID      int64     `json:"auction_id"`
	BidderUsername string    `json:"bidder_username"`
	Amount         float64   `json:"amount"`
	Timestamp      time.Time `json:"timestamp"`
}

// User represents a participant in the auction system
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsSeller     bool   `json:"is_seller"`
	BidCount     int64  `json:"bid_count"`
	AuctionCount int64  `json:"auction_count"`
}

// StatusReport is an advisory snapshot of registry-wide counters
type StatusReport struct {
	ServerStartTime time.Time `json:"server_start_time"`
	CurrentTime     time.Time `json:"current_time"`
	TotalAuctions   int       `json:"total_auctions"`
	ActiveAuctions  int       `json:"active_auctions"`
	TotalBids       int       `json:"total_bids"`
	RegisteredUsers int       `json:"registered_users"`
	State           string    `json:"state"`
}
