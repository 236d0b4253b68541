package request

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	CoachID     int64   `json:"coachId"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Country     string  `json:"country"`
	DateOfBirth string  `json:"dateOfBirth"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

// UpdatePlayerRequest is the request body for replacing a player.
// The id names the player to overwrite.
type UpdatePlayerRequest struct {
	ID          int64   `json:"id"`
	CoachID     int64   `json:"coachId"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Country     string  `json:"country"`
	DateOfBirth string  `json:"dateOfBirth"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

// AddProductRequest is the request body for adding a product
type AddProductRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// OrderRequest is the request body for ordering a product
type OrderRequest struct {
	AccountID string `json:"account_id"`
	ProductID string `json:"product_id"`
}

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
