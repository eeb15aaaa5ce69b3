package handler

import (
	"fmt"
	"net/http"

	model "auction-registry/internal/models"
	"auction-registry/services/auction/helpers"
	"auction-registry/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_registry.go -package=handler

// AuctionRegistryInterface is the operation surface the HTTP layer
// translates requests onto
type AuctionRegistryInterface interface {
	CreateAuction(itemName, description, sellerUsername string, startingPrice, bidIncrement float64, durationMinutes int64) (model.Auction, error)
	ActiveAuctions() ([]model.Auction, error)
	Auction(auctionID int64) (model.Auction, error)
	CloseAuction(auctionID int64) (bool, error)
	PlaceBid(auctionID int64, bidderUsername string, amount float64) (model.Bid, error)
	BidsForAuction(auctionID int64) ([]model.Bid, error)
	HighestBid(auctionID int64) (model.Bid, error)
	RegisterUser(username, email string, isSeller bool) error
	UserInfo(username string) (model.User, error)
	AuctionsByUser(sellerUsername string) ([]model.Auction, error)
	BidsByUser(bidderUsername string) ([]model.Bid, error)
	Status() (model.StatusReport, error)
	ActiveAuctionCount() (int, error)
	TotalBidCount() (int, error)
	RegisteredUsers() ([]string, error)
}

type AuctionHandler struct {
	registry AuctionRegistryInterface
}

func NewAuctionHandler(registry AuctionRegistryInterface) *AuctionHandler {
	return &AuctionHandler{registry: registry}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, err := h.registry.CreateAuction(req.ItemName, req.Description, req.SellerUsername,
		req.StartingPrice, req.BidIncrement, req.DurationMinutes)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"item_name": req.ItemName,
			"seller":    req.SellerUsername,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(created), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"item_name":  created.ItemName,
		"seller":     created.SellerUsername,
		"end_time":   created.EndTime,
	})
}

// GetActiveAuctionsHandler handles GET /auctions
func (h *AuctionHandler) GetActiveAuctionsHandler(c *gin.Context) {
	auctions, err := h.registry.ActiveAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetActiveAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "active auctions retrieved successfully")
	helpers.LogSuccess("GetActiveAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c, "GetAuctionHandler")
	if !ok {
		return
	}

	a, err := h.registry.Auction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "auction retrieved successfully")
}

// CloseAuctionHandler handles POST /auctions/:auction_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c, "CloseAuctionHandler")
	if !ok {
		return
	}

	closed, err := h.registry.CloseAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseAuctionHandler: error closing auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	message := "auction closed successfully"
	if !closed {
		message = "auction was already closed"
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CloseAuctionResponse{AuctionID: auctionID, Closed: closed}, message)
	helpers.LogSuccess("CloseAuctionHandler", message, map[string]any{
		"auction_id": auctionID,
		"closed":     closed,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.registry.PlaceBid(req.AuctionID, req.BidderUsername, req.Amount)
	if err != nil {
		helpers.RespondBidRejected(c, err)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": req.AuctionID,
			"bidder":     req.BidderUsername,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder":     bid.BidderUsername,
		"amount":     bid.Amount,
	})
}

// GetAuctionBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetAuctionBidsHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c, "GetAuctionBidsHandler")
	if !ok {
		return
	}

	bids, err := h.registry.BidsForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetAuctionBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetHighestBidHandler handles GET /auctions/:auction_id/highest
func (h *AuctionHandler) GetHighestBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c, "GetHighestBidHandler")
	if !ok {
		return
	}

	bid, err := h.registry.HighestBid(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: highest bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "highest bid retrieved successfully")
	helpers.LogSuccess("GetHighestBidHandler", "highest bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"amount":     bid.Amount,
	})
}

// RegisterUserHandler handles POST /users
func (h *AuctionHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	if err := h.registry.RegisterUser(req.Username, req.Email, req.IsSeller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterUserHandler: failed to register user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"username": req.Username}, "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{
		"username":  req.Username,
		"is_seller": req.IsSeller,
	})
}

// GetRegisteredUsersHandler handles GET /users
func (h *AuctionHandler) GetRegisteredUsersHandler(c *gin.Context) {
	usernames, err := h.registry.RegisteredUsers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	if usernames == nil {
		usernames = []string{}
	}

	utils.JSONResponse(c, http.StatusOK, usernames, "registered users retrieved successfully")
}

// GetUserInfoHandler handles GET /users/:username
func (h *AuctionHandler) GetUserInfoHandler(c *gin.Context) {
	username := c.Param("username")
	user, err := h.registry.UserInfo(username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserInfoHandler: error retrieving user", map[string]any{"username": username, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// GetUserAuctionsHandler handles GET /users/:username/auctions
func (h *AuctionHandler) GetUserAuctionsHandler(c *gin.Context) {
	username := c.Param("username")
	auctions, err := h.registry.AuctionsByUser(username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserAuctionsHandler: error retrieving auctions", map[string]any{"username": username, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("GetUserAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"username": username,
		"count":    len(auctions),
	})
}

// GetUserBidsHandler handles GET /users/:username/bids
func (h *AuctionHandler) GetUserBidsHandler(c *gin.Context) {
	username := c.Param("username")
	bids, err := h.registry.BidsByUser(username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserBidsHandler: error retrieving bids", map[string]any{"username": username, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetUserBidsHandler", "bids retrieved successfully", map[string]any{
		"username": username,
		"count":    len(bids),
	})
}

// GetServerStatusHandler handles GET /status
func (h *AuctionHandler) GetServerStatusHandler(c *gin.Context) {
	report, err := h.registry.Status()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "server status retrieved successfully")
}
