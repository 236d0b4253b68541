package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rostershop/internal/api/request"
	"rostershop/internal/api/response"
	"rostershop/internal/model"
	"rostershop/internal/services/shop"
)

// ShopHandler handles product and order endpoints
type ShopHandler struct {
	shop shop.ServiceInterface
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shop shop.ServiceInterface) *ShopHandler {
	return &ShopHandler{
		shop: shop,
	}
}

// AddProduct handles POST /api/v1/products
func (h *ShopHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req request.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ID == "" {
		WriteError(w, NewInvalidRequestError("id is required"))
		return
	}
	if req.Price < 0 {
		WriteError(w, NewInvalidRequestError("price must not be negative"))
		return
	}

	product := &model.Product{
		ID:        model.ProductID(req.ID),
		Name:      req.Name,
		Price:     req.Price,
		Available: req.Available,
	}
	if err := h.shop.AddProduct(r.Context(), product); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ProductFromModel(product))
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := model.ProductID(mux.Vars(r)["id"])

	product, err := h.shop.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProductFromModel(product))
}

// GetPrice handles GET /api/v1/products/{id}/price
func (h *ShopHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	id := model.ProductID(mux.Vars(r)["id"])

	price, err := h.shop.CheckProductPrice(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Price{
		ProductID: string(id),
		Price:     price,
	})
}

// Order handles POST /api/v1/orders
func (h *ShopHandler) Order(w http.ResponseWriter, r *http.Request) {
	var req request.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.AccountID == "" {
		WriteError(w, NewInvalidRequestError("account_id is required"))
		return
	}
	if req.ProductID == "" {
		WriteError(w, NewInvalidRequestError("product_id is required"))
		return
	}

	ordered, err := h.shop.OrderProduct(r.Context(), req.AccountID, model.ProductID(req.ProductID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Order{
		ProductID: req.ProductID,
		Ordered:   ordered,
	})
}
