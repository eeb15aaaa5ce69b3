package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-registry/internal/auctionerrors"
	model "auction-registry/internal/models"
	"auction-registry/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *MockAuctionRegistryInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRegistry := NewMockAuctionRegistryInterface(ctrl)
	h := NewAuctionHandler(mockRegistry)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", h.CreateAuctionHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.POST("/auctions/:auction_id/close", h.CloseAuctionHandler)
	router.GET("/auctions/:auction_id/highest", h.GetHighestBidHandler)
	router.POST("/bids", h.PlaceBidHandler)
	router.POST("/users", h.RegisterUserHandler)

	return router, mockRegistry
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionRegistryInterface)
		expectedStatus int
		validate       func(t *testing.T, resp map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{AuctionID: 1, BidderUsername: "bob", Amount: 110},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					PlaceBid(int64(1), "bob", 110.0).
					Return(model.Bid{BidID: 5, AuctionID: 1, BidderUsername: "bob", Amount: 110, Timestamp: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, 5.0, data["bid_id"])
				require.Equal(t, 1.0, data["auction_id"])
				require.Equal(t, "bob", data["bidder_username"])
				require.Equal(t, 110.0, data["amount"])
				_, err := time.Parse(time.RFC3339, data["timestamp"].(string))
				require.NoError(t, err)
			},
		},
		{
			name:        "bid_too_low_reports_minimum",
			requestBody: helpers.PlaceBidRequest{AuctionID: 1, BidderUsername: "bob", Amount: 105},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					PlaceBid(int64(1), "bob", 105.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", &auctionerrors.BidTooLowError{Amount: 105, Minimum: 110}))
			},
			expectedStatus: http.StatusConflict,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "bid amount too low", resp["message"])
				require.Equal(t, 110.0, resp["minimum_bid"])
			},
		},
		{
			name:        "auction_closed",
			requestBody: helpers.PlaceBidRequest{AuctionID: 1, BidderUsername: "bob", Amount: 500},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					PlaceBid(int64(1), "bob", 500.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionClosed))
			},
			expectedStatus: http.StatusConflict,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "auction is closed", resp["message"])
			},
		},
		{
			name:        "auction_not_found",
			requestBody: helpers.PlaceBidRequest{AuctionID: 99, BidderUsername: "bob", Amount: 500},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					PlaceBid(int64(99), "bob", 500.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockAuctionRegistryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_bidder",
			requestBody:    map[string]any{"auction_id": 1, "amount": 110},
			mockSetup:      func(m *MockAuctionRegistryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockRegistry := setupTestRouter(t)
			tc.mockSetup(mockRegistry)

			resp, w := performJSON(t, router, http.MethodPost, "/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionRegistryInterface)
		expectedStatus int
		validate       func(t *testing.T, resp map[string]any)
	}{
		{
			name: "success",
			requestBody: helpers.CreateAuctionRequest{
				ItemName:        "Vintage Watch",
				Description:     "1960s Rolex",
				SellerUsername:  "alice",
				StartingPrice:   500,
				BidIncrement:    25,
				DurationMinutes: 60,
			},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					CreateAuction("Vintage Watch", "1960s Rolex", "alice", 500.0, 25.0, int64(60)).
					Return(model.Auction{
						AuctionID:         1,
						ItemName:          "Vintage Watch",
						Description:       "1960s Rolex",
						SellerUsername:    "alice",
						StartingPrice:     500,
						BidIncrement:      25,
						CurrentHighestBid: 500,
						StartTime:         now,
						EndTime:           now.Add(time.Hour),
						Status:            model.StatusOpen,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, 1.0, data["auction_id"])
				require.Equal(t, "OPEN", data["status"])
				require.Equal(t, 500.0, data["current_highest_bid"])
			},
		},
		{
			name:           "missing_item_name",
			requestBody:    map[string]any{"seller_username": "alice"},
			mockSetup:      func(m *MockAuctionRegistryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockRegistry := setupTestRouter(t)
			tc.mockSetup(mockRegistry)

			resp, w := performJSON(t, router, http.MethodPost, "/auctions", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}

// Test GetAuctionHandler rejects non-numeric ids before touching the registry
func TestGetAuctionHandler_InvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	_, w := performJSON(t, router, http.MethodGet, "/auctions/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Test CloseAuctionHandler
func TestCloseAuctionHandler(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(m *MockAuctionRegistryInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "closes_open_auction",
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().CloseAuction(int64(1)).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction closed successfully",
		},
		{
			name: "already_closed",
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().CloseAuction(int64(1)).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction was already closed",
		},
		{
			name: "not_found",
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					CloseAuction(int64(1)).
					Return(false, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockRegistry := setupTestRouter(t)
			tc.mockSetup(mockRegistry)

			resp, w := performJSON(t, router, http.MethodPost, "/auctions/1/close", nil)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
		})
	}
}

// Test GetHighestBidHandler maps an empty history to 404
func TestGetHighestBidHandler_NoBids(t *testing.T) {
	router, mockRegistry := setupTestRouter(t)

	mockRegistry.EXPECT().
		HighestBid(int64(1)).
		Return(model.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrNoBids))

	resp, w := performJSON(t, router, http.MethodGet, "/auctions/1/highest", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "no bids found for auction", resp["message"])
}

// Test RegisterUserHandler
func TestRegisterUserHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionRegistryInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.RegisterUserRequest{Username: "alice", Email: "alice@email.com", IsSeller: true},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().RegisterUser("alice", "alice@email.com", true).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "duplicate_username",
			requestBody: helpers.RegisterUserRequest{Username: "alice", Email: "alice@email.com", IsSeller: true},
			mockSetup: func(m *MockAuctionRegistryInterface) {
				m.EXPECT().
					RegisterUser("alice", "alice@email.com", true).
					Return(fmt.Errorf("service: %w", auctionerrors.ErrUserExists))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing_username",
			requestBody:    map[string]any{"email": "x@email.com"},
			mockSetup:      func(m *MockAuctionRegistryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockRegistry := setupTestRouter(t)
			tc.mockSetup(mockRegistry)

			_, w := performJSON(t, router, http.MethodPost, "/users", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
