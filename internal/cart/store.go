package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KSunShin4/EcoMart/pkg/redis"
)

// cartTTL bounds how long an untouched cart survives in Redis.
const cartTTL = 30 * 24 * time.Hour

// Item is one product line in a cart.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the full persisted payload for one user.
type Cart struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists carts as JSON blobs in Redis, one key per user.
type Store struct {
	redis *redis.Client
}

// NewStore builds a cart store over the shared Redis client.
func NewStore(client *redis.Client) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &Store{redis: client}, nil
}

// Load returns the user's cart, or an empty cart when none is stored.
func (s *Store) Load(ctx context.Context, userID string) (*Cart, error) {
	raw, err := s.redis.Get(ctx, s.redis.CartKey(userID))
	if err != nil {
		if redis.IsNil(err) {
			return &Cart{Items: []Item{}}, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decoding cart payload: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return &cart, nil
}

// Save overwrites the user's cart and refreshes its TTL.
func (s *Store) Save(ctx context.Context, userID string, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart payload: %w", err)
	}
	if err := s.redis.Set(ctx, s.redis.CartKey(userID), payload, cartTTL); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// Drop removes the user's cart entirely.
func (s *Store) Drop(ctx context.Context, userID string) error {
	if err := s.redis.Del(ctx, s.redis.CartKey(userID)); err != nil {
		return fmt.Errorf("dropping cart: %w", err)
	}
	return nil
}
