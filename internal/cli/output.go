package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Product:
		o.printProduct(v)
	case Price:
		fmt.Printf("Product %s costs %.2f\n", v.ProductID, v.Price)
	case Order:
		o.printOrder(v)
	case User:
		fmt.Printf("User: %s <%s>\nBalance: %.2f\n", v.Login, v.Email, v.Balance)
	case Login:
		fmt.Printf("Logged in as %s\n", v.Login)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player #%d: %s %s\n", p.ID, p.Firstname, p.Lastname)
	fmt.Printf("  Coach:   %d\n", p.CoachID)
	fmt.Printf("  Country: %s\n", p.Country)
	fmt.Printf("  Born:    %s\n", p.DateOfBirth)
	fmt.Printf("  Height:  %.1f\n", p.Height)
	fmt.Printf("  Weight:  %.1f\n", p.Weight)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players found")
		return
	}
	for _, p := range players {
		fmt.Printf("#%d  %s %s  (%s)\n", p.ID, p.Firstname, p.Lastname, p.Country)
	}
}

func (o *Output) printProduct(p Product) {
	availability := "available"
	if !p.Available {
		availability = "sold"
	}
	fmt.Printf("Product %s: %s\n", p.ID, p.Name)
	fmt.Printf("  Price: %.2f\n", p.Price)
	fmt.Printf("  State: %s\n", availability)
}

func (o *Output) printOrder(ord Order) {
	if ord.Ordered {
		fmt.Printf("Ordered product %s\n", ord.ProductID)
	} else {
		fmt.Printf("Product %s is no longer available\n", ord.ProductID)
	}
}

// Player response type (matches API)
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

// Product response type
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// Price response type
type Price struct {
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
}

// Order response type
type Order struct {
	ProductID string `json:"product_id"`
	Ordered   bool   `json:"ordered"`
}

// User response type
type User struct {
	Login   string  `json:"login"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// Login response type
type Login struct {
	Login         string `json:"login"`
	Authenticated bool   `json:"authenticated"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}
