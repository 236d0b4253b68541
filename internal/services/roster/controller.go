package roster

import (
	"context"
	"log/slog"

	"rostershop/internal/model"
	"rostershop/internal/storage"
)

// Controller manages the player roster: creation, lookup, country
// filtering, whole-record updates and removal.
type Controller struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewController creates a new roster controller
func NewController(storage storage.Storage, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		logger:  logger,
	}
}

// CreatePlayer adds a new player to the roster. The id is store-assigned;
// any id on the request is ignored.
func (c *Controller) CreatePlayer(ctx context.Context, attrs model.PlayerAttributes) (*model.Player, error) {
	player, err := c.storage.CreatePlayer(ctx, attrs)
	if err != nil {
		return nil, err
	}

	c.logger.Info("player created",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("country", player.Country),
	)
	return player, nil
}

// GetPlayer retrieves a player by id
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// ListPlayersByCountry returns the players whose country matches exactly
// (case-sensitive, no normalization), in insertion order.
func (c *Controller) ListPlayersByCountry(ctx context.Context, country string) ([]*model.Player, error) {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if p.Country == country {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// UpdatePlayer replaces the stored record whose id matches player.ID with
// the given record. Every field is overwritten, including ones the caller
// may not have meant to change.
func (c *Controller) UpdatePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	updated, err := c.storage.ReplacePlayer(ctx, player)
	if err != nil {
		return nil, err
	}

	c.logger.Info("player updated", slog.Int64("player_id", int64(player.ID)))
	return updated, nil
}

// DeletePlayer removes a player from the roster.
// Deleting an absent id is a no-op.
func (c *Controller) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return c.storage.DeletePlayer(ctx, id)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreatePlayer(ctx context.Context, attrs model.PlayerAttributes) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayersByCountry(ctx context.Context, country string) ([]*model.Player, error)
	UpdatePlayer(ctx context.Context, player *model.Player) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
