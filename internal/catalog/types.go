package catalog

// Category classifies a move.
type Category string

const (
	CategoryStatus   Category = "Status"
	CategoryPhysical Category = "Physical"
	CategorySpecial  Category = "Special"
)

// MethodEgg is the learn method that marks a move as transmissible by breeding.
const MethodEgg = "egg"

// Creature is a catalog species.
type Creature struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PrimaryType   string `json:"primary_type"`
	SecondaryType string `json:"secondary_type,omitempty"` // empty when the creature has a single type
}

// Move is a catalog move. Power and Accuracy are nil when the move has none.
type Move struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Category Category `json:"category"`
	Power    *int64   `json:"power,omitempty"`
	Accuracy *int64   `json:"accuracy,omitempty"`
}

// Stats counts the rows of each entity table.
type Stats struct {
	Creatures int `json:"creatures"`
	EggGroups int `json:"egg_groups"`
	Moves     int `json:"moves"`
}
