package response

import (
	"rostershop/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID          int64   `json:"id"`
	CoachID     int64   `json:"coachId"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Country     string  `json:"country"`
	DateOfBirth string  `json:"dateOfBirth"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          int64(p.ID),
		CoachID:     p.CoachID,
		Firstname:   p.Firstname,
		Lastname:    p.Lastname,
		Country:     p.Country,
		DateOfBirth: p.DateOfBirth.String(),
		Height:      p.Height,
		Weight:      p.Weight,
	}
}

// PlayersFromModel converts a slice of model players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Product represents a product in API responses
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// ProductFromModel converts a model.Product to a response Product
func ProductFromModel(p *model.Product) Product {
	return Product{
		ID:        string(p.ID),
		Name:      p.Name,
		Price:     p.Price,
		Available: p.Available,
	}
}

// Price is the response for a product price lookup
type Price struct {
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
}

// Order is the response for an order attempt
type Order struct {
	ProductID string `json:"product_id"`
	Ordered   bool   `json:"ordered"`
}

// User represents a registered user in API responses.
// The password hash never leaves the server.
type User struct {
	Login   string  `json:"login"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Login:   u.Login,
		Email:   u.Email,
		Balance: u.Balance,
	}
}

// Login is the response for a login attempt
type Login struct {
	Login         string `json:"login"`
	Authenticated bool   `json:"authenticated"`
}
