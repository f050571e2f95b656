package catalog

const (
	// FreeAgentClub is the club value meaning "no current club".
	FreeAgentClub = "Free Agent"
	// NoLeague is the league of the free-agent club.
	NoLeague = "None"
)

// League is a competition a club plays in.
type League struct {
	Name    string `yaml:"name" validate:"required"`
	Country string `yaml:"country" validate:"required"`
	Tier    int    `yaml:"tier" validate:"min=1,max=3"`
	Code    string `yaml:"code" validate:"required,len=3"`
}

// Club is a catalogued club. SquadValue is informational, in millions.
type Club struct {
	Name       string `yaml:"name" validate:"required"`
	League     string `yaml:"league" validate:"required"`
	SquadValue int64  `yaml:"value" validate:"min=0"`
	Stadium    string `yaml:"stadium" validate:"required"`
	Coach      string `yaml:"coach" validate:"required"`
}

// Position is one entry of the position taxonomy, e.g. CAM.
type Position struct {
	Code string `yaml:"code" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// SeedPlayer is the baseline of one generated player. Value is in millions.
type SeedPlayer struct {
	Name        string
	Club        string
	Position    string
	Nationality string
	Age         int
	Value       float64
	Number      int
}

// Probability tiers of a rumour.
const (
	ProbabilityLow    = "Low"
	ProbabilityMedium = "Medium"
	ProbabilityHigh   = "High"
)

// SeedRumour references its player by exact name. Fee is in millions.
type SeedRumour struct {
	Player      string
	From        string
	To          string
	Probability string
	Fee         float64
}

// Seed is the static input of dataset generation.
type Seed struct {
	Players []SeedPlayer
	Rumours []SeedRumour
}
