package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homeforge-app/homeforge/internal/profile"
	"github.com/homeforge-app/homeforge/internal/scoring"
)

type AreaTier string

const (
	TierTop       AreaTier = "top"
	TierContender AreaTier = "contender"
	TierBackup    AreaTier = "backup"
	TierRuledOut  AreaTier = "ruled_out"
)

// Area is one candidate location under evaluation.
type Area struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	State           string    `json:"state"`
	County          string    `json:"county,omitempty"`
	MetroArea       string    `json:"metro_area,omitempty"`
	DistanceToMetro string    `json:"distance_to_metro,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	Coordinates     string    `json:"coordinates,omitempty"`

	// Reference info blocks, free-form key/value per area.
	Climate        map[string]interface{} `json:"climate,omitempty"`
	Infrastructure map[string]interface{} `json:"infrastructure,omitempty"`
	LandInfo       map[string]interface{} `json:"land_info,omitempty"`
	TaxInfo        map[string]interface{} `json:"tax_info,omitempty"`

	SchoolDistrict  string `json:"school_district,omitempty"`
	NearestHospital string `json:"nearest_hospital,omitempty"`
	NearestGrocery  string `json:"nearest_grocery,omitempty"`
	Population      string `json:"population,omitempty"`

	Pros  []string `json:"pros,omitempty"`
	Cons  []string `json:"cons,omitempty"`
	Notes string   `json:"notes,omitempty"`

	Tier   AreaTier           `json:"tier,omitempty"`
	Scores scoring.AreaScores `json:"scores,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AreaFilter struct {
	State  string
	Tier   *AreaTier
	Tag    string
	Limit  int
	Offset int
}

// BudgetCategory is one line of the build budget with an estimate and a
// running actual.
type BudgetCategory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Estimate  float64   `json:"estimate"`
	Actual    float64   `json:"actual"`
	Notes     string    `json:"notes,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RequirementPriority string

const (
	PriorityMustHave   RequirementPriority = "must_have"
	PriorityNiceToHave RequirementPriority = "nice_to_have"
	PriorityFuture     RequirementPriority = "future"
)

// Requirement is one home-requirement line (room, feature, system).
type Requirement struct {
	ID        uuid.UUID           `json:"id"`
	Category  string              `json:"category"`
	Name      string              `json:"name"`
	Priority  RequirementPriority `json:"priority"`
	Done      bool                `json:"done"`
	Notes     string              `json:"notes,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "not_started"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneDone       MilestoneStatus = "done"
)

// Milestone is one step of the build timeline.
type Milestone struct {
	ID         uuid.UUID       `json:"id"`
	Phase      string          `json:"phase"`
	Name       string          `json:"name"`
	Status     MilestoneStatus `json:"status"`
	TargetDate *time.Time      `json:"target_date,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	SortOrder  int             `json:"sort_order"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ChatMessage is one turn of the planning-assistant conversation.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings holds app-wide preferences.
type Settings struct {
	OllamaModel string    `json:"ollama_model,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Store interface {
	// Areas
	CreateArea(ctx context.Context, area *Area) error
	GetArea(ctx context.Context, id uuid.UUID) (*Area, error)
	ListAreas(ctx context.Context, filter AreaFilter) ([]*Area, error)
	UpdateArea(ctx context.Context, area *Area) error
	DeleteArea(ctx context.Context, id uuid.UUID) error

	// Per-criterion score writes. Scores are clamped at this boundary and
	// areas with no score data yet are tolerated.
	SetScore(ctx context.Context, areaID uuid.UUID, categoryID, criterionID string, score int) error
	SetNotes(ctx context.Context, areaID uuid.UUID, categoryID, criterionID, notes string) error

	// Weight profiles, persisted as one state blob.
	GetProfileState(ctx context.Context) (profile.State, error)
	SaveProfileState(ctx context.Context, st profile.State) error

	// Budget
	CreateBudgetCategory(ctx context.Context, c *BudgetCategory) error
	ListBudgetCategories(ctx context.Context) ([]*BudgetCategory, error)
	UpdateBudgetCategory(ctx context.Context, c *BudgetCategory) error
	DeleteBudgetCategory(ctx context.Context, id uuid.UUID) error

	// Requirements
	CreateRequirement(ctx context.Context, r *Requirement) error
	ListRequirements(ctx context.Context) ([]*Requirement, error)
	UpdateRequirement(ctx context.Context, r *Requirement) error
	DeleteRequirement(ctx context.Context, id uuid.UUID) error

	// Timeline
	CreateMilestone(ctx context.Context, m *Milestone) error
	ListMilestones(ctx context.Context) ([]*Milestone, error)
	UpdateMilestone(ctx context.Context, m *Milestone) error
	DeleteMilestone(ctx context.Context, id uuid.UUID) error

	// Chat history
	AppendChatMessage(ctx context.Context, msg *ChatMessage) error
	ListChatMessages(ctx context.Context, limit int) ([]*ChatMessage, error)
	ClearChatMessages(ctx context.Context) error

	// Settings
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error

	Close() error
}
