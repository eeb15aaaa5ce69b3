package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	ItemName        string  `json:"item_name" binding:"required"`
	Description     string  `json:"description"`
	SellerUsername  string  `json:"seller_username" binding:"required"`
	StartingPrice   float64 `json:"starting_price"`
	BidIncrement    float64 `json:"bid_increment"`
	DurationMinutes int64   `json:"duration_minutes"`
}

type PlaceBidRequest struct {
	AuctionID      int64   `json:"auction_id" binding:"required"`
	BidderUsername string  `json:"bidder_username" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	IsSeller bool   `json:"is_seller"`
}

type AuctionResponse struct {
	AuctionID         int64   `json:"auction_id"`
	ItemName          string  `json:"item_name"`
	Description       string  `json:"description"`
	SellerUsername    string  `json:"seller_username"`
	StartingPrice     float64 `json:"starting_price"`
	BidIncrement      float64 `json:"bid_increment"`
	CurrentHighestBid float64 `json:"current_highest_bid"`
	HighestBidder     string  `json:"highest_bidder,omitempty"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	Status            string  `json:"status"`
	BidCount          int64   `json:"bid_count"`
}

type BidResponse struct {
	BidID          int64   `json:"bid_id"`
	AuctionID      int64   `json:"auction_id"`
	BidderUsername string  `json:"bidder_username"`
	Amount         float64 `json:"amount"`
	Timestamp      string  `json:"timestamp"`
}

type CloseAuctionResponse struct {
	AuctionID int64 `json:"auction_id"`
	Closed    bool  `json:"closed"`
}
