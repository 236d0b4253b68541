package storage

import (
	"context"

	"rostershop/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations must make CreatePlayer safe against concurrent calls (no
// two calls may receive the same id) and ReserveProduct an atomic
// compare-and-set, so that callers can build race-free flows on top.
type Storage interface {
	// Player operations
	CreatePlayer(ctx context.Context, attrs model.PlayerAttributes) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	ReplacePlayer(ctx context.Context, player *model.Player) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Product operations
	AddProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error)
	// ReserveProduct atomically transitions the product from available to
	// unavailable. It returns false (and no error) if the product was
	// already unavailable, and model.ErrProductNotFound if it does not exist.
	ReserveProduct(ctx context.Context, id model.ProductID) (bool, error)
	// ReleaseProduct reverts a reservation, making the product available
	// again. Used to roll back a reserve when the purchase cannot complete.
	ReleaseProduct(ctx context.Context, id model.ProductID) error

	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, login string) (*model.User, error)
	UserExists(ctx context.Context, login string) (bool, error)
}
