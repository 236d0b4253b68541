package redis

import (
	"fmt"

	"rostershop/internal/model"
)

// Key prefix for all rostershop data
const keyPrefix = "rshop"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerIDCounterKey returns the Redis key of the monotonic player id counter
func playerIDCounterKey() string {
	return fmt.Sprintf("%s:player:next_id", keyPrefix)
}

// playerOrderKey returns the Redis key of the LIST tracking insertion order
func playerOrderKey() string {
	return fmt.Sprintf("%s:player:order", keyPrefix)
}

// productKey returns the Redis key for a Product's immutable attributes
func productKey(id model.ProductID) string {
	return fmt.Sprintf("%s:product:%s", keyPrefix, id)
}

// productAvailKey returns the Redis key of a Product's availability flag.
// Held separately so the reserve transition can be a single compare-and-set.
func productAvailKey(id model.ProductID) string {
	return fmt.Sprintf("%s:product:%s:avail", keyPrefix, id)
}

// userKey returns the Redis key for a User
func userKey(login string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, login)
}
