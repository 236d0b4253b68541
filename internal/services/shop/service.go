package shop

import (
	"context"
	"errors"
	"log/slog"

	"rostershop/internal/metrics"
	"rostershop/internal/model"
	"rostershop/internal/storage"
)

// ErrInsufficientFunds is returned when the buyer's balance does not cover
// the product price. Distinct from the ordinary "product unavailable"
// outcome, which is not an error.
var ErrInsufficientFunds = errors.New("insufficient funds")

// BalanceProvider resolves the spendable balance of an account.
// Unknown accounts yield a balance of 0, not an error.
type BalanceProvider interface {
	CheckBalance(ctx context.Context, accountID string) (float64, error)
}

// Service gates product purchases on availability and funds, committing the
// one-way available-to-sold transition.
type Service struct {
	storage storage.Storage
	balance BalanceProvider
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a new shop service
func New(storage storage.Storage, balance BalanceProvider, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		balance: balance,
		metrics: m,
		logger:  logger,
	}
}

// OrderProduct attempts to buy a product for the given account.
//
// The availability flag is reserved before the balance check and released if
// funds are insufficient. Because the reserve is a storage-level
// compare-and-set, two concurrent buyers can never both observe the product
// as available: at most one order per product ever succeeds.
//
// Returns (true, nil) on success, (false, nil) if the product is already
// sold, and ErrInsufficientFunds if the balance does not cover the price.
func (s *Service) OrderProduct(ctx context.Context, accountID string, productID model.ProductID) (bool, error) {
	product, err := s.storage.GetProduct(ctx, productID)
	if err != nil {
		return false, err
	}

	reserved, err := s.storage.ReserveProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	if !reserved {
		s.metrics.Orders.WithLabelValues(metrics.OrderUnavailable).Inc()
		return false, nil
	}

	balance, err := s.balance.CheckBalance(ctx, accountID)
	if err != nil {
		s.release(ctx, productID)
		return false, err
	}

	if product.Price >= balance {
		s.release(ctx, productID)
		s.metrics.Orders.WithLabelValues(metrics.OrderRejected).Inc()
		return false, ErrInsufficientFunds
	}

	s.logger.Info("product sold",
		slog.String("product_id", string(productID)),
		slog.String("account_id", accountID),
		slog.Float64("price", product.Price),
	)
	s.metrics.Orders.WithLabelValues(metrics.OrderCompleted).Inc()
	return true, nil
}

// CheckProductPrice returns the price of a product
func (s *Service) CheckProductPrice(ctx context.Context, productID model.ProductID) (float64, error) {
	product, err := s.storage.GetProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return product.Price, nil
}

// AddProduct registers a new product in the catalog. Product ids are
// caller-assigned.
func (s *Service) AddProduct(ctx context.Context, product *model.Product) error {
	if err := s.storage.AddProduct(ctx, product); err != nil {
		return err
	}

	s.logger.Info("product added",
		slog.String("product_id", string(product.ID)),
		slog.Float64("price", product.Price),
	)
	return nil
}

// GetProduct retrieves a product by id
func (s *Service) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	return s.storage.GetProduct(ctx, id)
}

// release rolls a reservation back, keeping the product purchasable
func (s *Service) release(ctx context.Context, productID model.ProductID) {
	if err := s.storage.ReleaseProduct(ctx, productID); err != nil {
		s.logger.Error("failed to release product reservation",
			slog.String("product_id", string(productID)),
			slog.String("error", err.Error()),
		)
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	OrderProduct(ctx context.Context, accountID string, productID model.ProductID) (bool, error)
	CheckProductPrice(ctx context.Context, productID model.ProductID) (float64, error)
	AddProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error)
}

var _ ServiceInterface = (*Service)(nil)
