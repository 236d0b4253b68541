package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"rostershop/internal/model"
	"rostershop/internal/storage"
)

// reserveScript atomically transitions a product's availability flag from
// "1" to "0". Returns 1 on success, 0 if already unavailable, -1 if the
// product does not exist.
var reserveScript = redis.NewScript(`
local avail = redis.call("GET", KEYS[1])
if not avail then
	return -1
end
if avail == "1" then
	redis.call("SET", KEYS[1], "0")
	return 1
end
return 0
`)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, attrs model.PlayerAttributes) (*model.Player, error) {
	// INCR serializes concurrent creates: no two callers can see the same id
	id, err := s.client.Incr(ctx, playerIDCounterKey()).Result()
	if err != nil {
		return nil, err
	}

	player := model.NewPlayer(model.PlayerID(id), attrs)
	data, err := json.Marshal(player)
	if err != nil {
		return nil, err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.RPush(ctx, playerOrderKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return player, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.LRange(ctx, playerOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Entry deleted between LRANGE and MGET
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(raw), &player); err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	return players, nil
}

func (s *Storage) ReplacePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	data, err := json.Marshal(player)
	if err != nil {
		return nil, err
	}

	// SET XX only overwrites an existing record, so replace-or-fail is atomic
	set, err := s.client.SetXX(ctx, playerKey(player.ID), data, 0).Result()
	if err != nil {
		return nil, err
	}
	if !set {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.LRem(ctx, playerOrderKey(), 0, int64(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Product operations

func (s *Storage) AddProduct(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	created, err := s.client.SetNX(ctx, productKey(product.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrProductExists
	}

	avail := "0"
	if product.Available {
		avail = "1"
	}
	return s.client.Set(ctx, productAvailKey(product.ID), avail, 0).Err()
}

func (s *Storage) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	values, err := s.client.MGet(ctx, productKey(id), productAvailKey(id)).Result()
	if err != nil {
		return nil, err
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, model.ErrProductNotFound
	}

	var product model.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		return nil, err
	}
	product.Available = values[1] == "1"
	return &product, nil
}

func (s *Storage) ReserveProduct(ctx context.Context, id model.ProductID) (bool, error) {
	result, err := reserveScript.Run(ctx, s.client, []string{productAvailKey(id)}).Int()
	if err != nil {
		return false, err
	}
	switch result {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, model.ErrProductNotFound
	}
}

func (s *Storage) ReleaseProduct(ctx context.Context, id model.ProductID) error {
	set, err := s.client.SetXX(ctx, productAvailKey(id), "1", 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return model.ErrProductNotFound
	}
	return nil
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	created, err := s.client.SetNX(ctx, userKey(user.Login), data, 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrUserExists
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, login string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(login)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) UserExists(ctx context.Context, login string) (bool, error) {
	n, err := s.client.Exists(ctx, userKey(login)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
