package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"auction-registry/internal/auctionerrors"
	model "auction-registry/internal/models"
	"auction-registry/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseAuctionID parses the :auction_id path parameter. A non-numeric id
// is reported as a bad request; it can never name an existing auction.
func ParseAuctionID(c *gin.Context, handlerName string) (int64, bool) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", raw), "invalid auction id")
		utils.Warn(handlerName+": invalid auction id", map[string]any{"auction_id": raw})
		return 0, false
	}
	return id, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrUserExists):
		return http.StatusConflict, "username already registered"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondBidRejected sends the rejection for a failed bid. Bid-too-low
// rejections carry the minimum acceptable amount so callers can retry.
func RespondBidRejected(c *gin.Context, err error) {
	status, message := MapErrorToHTTP(err)
	if minimum, ok := auctionerrors.MinimumBid(err); ok {
		c.JSON(status, gin.H{
			"status":      status,
			"message":     message,
			"error":       err.Error(),
			"minimum_bid": minimum,
		})
		return
	}
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
}

// NewAuctionResponse converts an auction snapshot to its response DTO
func NewAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:         a.AuctionID,
		ItemName:          a.ItemName,
		Description:       a.Description,
		SellerUsername:    a.SellerUsername,
		StartingPrice:     a.StartingPrice,
		BidIncrement:      a.BidIncrement,
		CurrentHighestBid: a.CurrentHighestBid,
		HighestBidder:     a.HighestBidder,
		StartTime:         a.StartTime.UTC().Format(time.RFC3339),
		EndTime:           a.EndTime.UTC().Format(time.RFC3339),
		Status:            string(a.Status),
		BidCount:          a.BidCount,
	}
}

// NewAuctionResponses converts a slice of auction snapshots
func NewAuctionResponses(auctions []model.Auction) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, NewAuctionResponse(a))
	}
	return out
}

// NewBidResponse converts a bid record to its response DTO
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:          b.BidID,
		AuctionID:      b.AuctionID,
		BidderUsername: b.BidderUsername,
		Amount:         b.Amount,
		Timestamp:      b.Timestamp.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses converts a slice of bid records
func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
