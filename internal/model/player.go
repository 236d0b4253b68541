package model

// PlayerID uniquely identifies a player within the roster
type PlayerID int64

// PlayerAttributes holds the caller-owned fields of a player record.
// Identity is assigned by the store, never by the caller.
type PlayerAttributes struct {
	CoachID     int64
	Firstname   string
	Lastname    string
	Country     string
	DateOfBirth Date
	Height      float64
	Weight      float64
}

// Player is an identity-bearing roster record
type Player struct {
	ID PlayerID
	PlayerAttributes
}

// NewPlayer builds a player from store-assigned identity and caller attributes
func NewPlayer(id PlayerID, attrs PlayerAttributes) *Player {
	return &Player{
		ID:               id,
		PlayerAttributes: attrs,
	}
}
