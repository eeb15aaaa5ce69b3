package server

import (
	auction "auction-registry/internal/auctionService"
	handler "auction-registry/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(registry *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request with an id
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(registry)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.GetActiveAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/close", auctionHandler.CloseAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetAuctionBidsHandler)
		auctions.GET("/:auction_id/highest", auctionHandler.GetHighestBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.RegisterUserHandler)
		users.GET("", auctionHandler.GetRegisteredUsersHandler)
		users.GET("/:username", auctionHandler.GetUserInfoHandler)
		users.GET("/:username/auctions", auctionHandler.GetUserAuctionsHandler)
		users.GET("/:username/bids", auctionHandler.GetUserBidsHandler)
	}

	router.GET("/status", auctionHandler.GetServerStatusHandler)

	return router
}
