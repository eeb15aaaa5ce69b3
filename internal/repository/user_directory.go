package repository

import (
	"fmt"
	"sync"

	"auction-registry/internal/auctionerrors"
	model "auction-registry/internal/models"
)

// UserDirectory defines the user registration and statistics interface
type UserDirectory interface {
	Register(username, email string, isSeller bool) error
	Lookup(username string) (model.User, error)
	IncrementBidCount(username string)
	IncrementAuctionCount(username string)
	ListUsernames() []string
	Count() int
}

// MemoryUserDirectory is a concurrency-safe in-memory implementation of UserDirectory
type MemoryUserDirectory struct {
	mu    sync.RWMutex
	users map[string]*model.User // key: username
	order []string               // usernames in registration order
}

// NewMemoryUserDirectory creates a new in-memory user directory instance
func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{
		users: make(map[string]*model.User),
	}
}

// Register inserts a new user with zero counters. Registering a username
// that already exists reports ErrUserExists and leaves the record unchanged.
func (d *MemoryUserDirectory) Register(username, email string, isSeller bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[username]; ok {
		return fmt.Errorf("register user %s: %w", username, auctionerrors.ErrUserExists)
	}

	d.users[username] = &model.User{
		Username: username,
		Email:    email,
		IsSeller: isSeller,
	}
	d.order = append(d.order, username)

	return nil
}

// Lookup returns a snapshot of the user record
func (d *MemoryUserDirectory) Lookup(username string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("lookup user %s: %w", username, auctionerrors.ErrUserNotFound)
	}
	return *u, nil
}

// IncrementBidCount bumps the user's bid counter. Unknown usernames are a
// no-op: bids from unregistered bidders are tolerated.
func (d *MemoryUserDirectory) IncrementBidCount(username string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if u, ok := d.users[username]; ok {
		u.BidCount++
	}
}

// IncrementAuctionCount bumps the user's auction counter. Unknown
// usernames are a no-op, matching IncrementBidCount.
func (d *MemoryUserDirectory) IncrementAuctionCount(username string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if u, ok := d.users[username]; ok {
		u.AuctionCount++
	}
}

// ListUsernames returns all registered usernames in registration order
func (d *MemoryUserDirectory) ListUsernames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]string(nil), d.order...)
}

// Count returns the number of registered users
func (d *MemoryUserDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.users)
}
