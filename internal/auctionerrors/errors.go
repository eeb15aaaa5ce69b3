package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Business logic errors
var (
	ErrAuctionClosed = errors.New("auction is closed")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrUserExists    = errors.New("username already registered")
)

// BidTooLowError reports a rejected bid together with the minimum amount
// the caller must offer to be accepted. It matches ErrBidTooLow under
// errors.Is so callers can classify it like any other sentinel.
type BidTooLowError struct {
	Amount  float64
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount %.2f is too low, minimum bid is %.2f", e.Amount, e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// MinimumBid extracts the minimum acceptable amount from a bid-too-low
// failure. The second return is false if err is not one.
func MinimumBid(err error) (float64, bool) {
	var tooLow *BidTooLowError
	if errors.As(err, &tooLow) {
		return tooLow.Minimum, true
	}
	return 0, false
}
