package memory

import (
	"context"
	"sync"

	"rostershop/internal/model"
	"rostershop/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	players *Collection[*model.Player]

	mu       sync.RWMutex
	products map[model.ProductID]*model.Product
	users    map[string]*model.User
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:  NewCollection[*model.Player](),
		products: make(map[model.ProductID]*model.Product),
		users:    make(map[string]*model.User),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, attrs model.PlayerAttributes) (*model.Player, error) {
	player := s.players.Insert(func(id int64) *model.Player {
		return model.NewPlayer(model.PlayerID(id), attrs)
	})
	return player, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, ok := s.players.Get(int64(id))
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.players.List(nil), nil
}

func (s *Storage) ReplacePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	if !s.players.Replace(int64(player.ID), player) {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.players.Delete(int64(id))
	return nil
}

// Product operations

func (s *Storage) AddProduct(ctx context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; ok {
		return model.ErrProductExists
	}
	p := *product
	s.products[product.ID] = &p
	return nil
}

func (s *Storage) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	p := *product
	return &p, nil
}

func (s *Storage) ReserveProduct(ctx context.Context, id model.ProductID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return false, model.ErrProductNotFound
	}
	if !product.Available {
		return false, nil
	}
	product.Available = false
	return true, nil
}

func (s *Storage) ReleaseProduct(ctx context.Context, id model.ProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return model.ErrProductNotFound
	}
	product.Available = true
	return nil
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Login]; ok {
		return model.ErrUserExists
	}
	u := *user
	s.users[user.Login] = &u
	return nil
}

func (s *Storage) GetUser(ctx context.Context, login string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[login]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) UserExists(ctx context.Context, login string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[login]
	return ok, nil
}
