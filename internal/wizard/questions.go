// Package wizard implements the discovery questionnaire: a fixed question
// sequence whose answers reweight categories, eliminate areas, and add
// criterion bonuses before recomputing composite scores.
package wizard

type QuestionType string

const (
	TypeSingle QuestionType = "single"
	TypeMulti  QuestionType = "multi"
)

// Condition is a declarative score threshold against one criterion. An area
// passes when its raw score for the criterion is at least Min; an unscored
// criterion reads as 0 and fails any positive threshold.
type Condition struct {
	CategoryID  string `json:"category_id"`
	CriterionID string `json:"criterion_id"`
	Min         int    `json:"min"`
}

// Option is one selectable answer. Which fields are set determines what the
// option does: Filter eliminates (multi-select deal-breakers), ScoreFilter
// eliminates (single-select answers), WeightMods multiplies category weights
// (single-select only), ScoreBonuses adds criterion points (multi-select
// only), TagFilter restricts by area tag.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`

	Filter       *Condition                `json:"filter,omitempty"`
	ScoreFilter  *Condition                `json:"score_filter,omitempty"`
	WeightMods   map[string]float64        `json:"weight_mods,omitempty"`
	ScoreBonuses map[string]map[string]int `json:"score_bonuses,omitempty"`
	TagFilter    string                    `json:"tag_filter,omitempty"`
}

type Question struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options"`
}

// Questions returns the fixed questionnaire in presentation order.
func Questions() []Question {
	return questions
}

// QuestionByID returns the question with the given id, or nil.
func QuestionByID(id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

func (q *Question) option(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

var questions = []Question{
	{
		ID:       "dealbreakers",
		Title:    "Deal-Breakers",
		Subtitle: "Select anything that is an absolute must-have for you.",
		Type:     TypeMulti,
		Options: []Option{
			{
				ID:          "noIncomeTax",
				Label:       "No state income tax",
				Description: "States like WA, TX, NH have zero income tax",
				Filter:      &Condition{CategoryID: "financial", CriterionID: "incomeTax", Min: 10},
			},
			{
				ID:          "mgClose",
				Label:       "MG specialist within 90 min",
				Description: "Neuromuscular center for myasthenia gravis treatment",
				Filter:      &Condition{CategoryID: "healthcare", CriterionID: "mgDistance", Min: 4},
			},
			{
				ID:          "airportClose",
				Label:       "Major international airport within 90 min",
				Description: "Hub airport with direct international flights",
				Filter:      &Condition{CategoryID: "transportation", CriterionID: "airportDistance", Min: 4},
			},
			{
				ID:          "topSchools",
				Label:       "Top-rated school district",
				Description: "Top 15% rated public school district",
				Filter:      &Condition{CategoryID: "schools", CriterionID: "districtRating", Min: 8},
			},
			{
				ID:          "ownerBuild",
				Label:       "Owner-builder / easy permitting",
				Description: "Can self-certify or act as own GC with minimal red tape",
				Filter:      &Condition{CategoryID: "buildingFreedom", CriterionID: "ownerBuilder", Min: 7},
			},
		},
	},
	{
		ID:       "budget",
		Title:    "Budget Priority",
		Subtitle: "How much does cost drive your decision?",
		Type:     TypeSingle,
		Options: []Option{
			{
				ID:          "budgetFirst",
				Label:       "Cheapest possible",
				Description: "Maximize acreage and value, cost is the top priority",
				WeightMods:  map[string]float64{"financial": 2.0, "landQuality": 0.7, "community": 0.5},
			},
			{
				ID:          "budgetBalanced",
				Label:       "Good balance",
				Description: "Reasonable cost but willing to pay for quality of life",
				WeightMods:  map[string]float64{},
			},
			{
				ID:          "qualityFirst",
				Label:       "Quality over cost",
				Description: "Will pay more for the right schools, community, and lifestyle",
				WeightMods:  map[string]float64{"financial": 0.5, "schools": 1.8, "community": 1.5, "safety": 1.5},
			},
		},
	},
	{
		ID:       "climate",
		Title:    "Climate Preference",
		Subtitle: "What weather are you looking for?",
		Type:     TypeSingle,
		Options: []Option{
			{
				ID:          "mildWinters",
				Label:       "Mild winters, hate the cold",
				Description: "Prefer areas where winter stays above 35°F",
				WeightMods:  map[string]float64{"climate": 1.8},
				ScoreFilter: &Condition{CategoryID: "climate", CriterionID: "winterComfort", Min: 7},
			},
			{
				ID:          "fourSeasons",
				Label:       "Four real seasons, no extreme heat",
				Description: "Want fall foliage and spring blooms, but summer under 95°F",
				WeightMods:  map[string]float64{"climate": 1.5},
				ScoreFilter: &Condition{CategoryID: "climate", CriterionID: "summerComfort", Min: 5},
			},
			{
				ID:          "drySunny",
				Label:       "Dry climate with lots of sunshine",
				Description: "Low humidity and 250+ sunny days per year",
				WeightMods:  map[string]float64{"climate": 1.5},
				ScoreFilter: &Condition{CategoryID: "climate", CriterionID: "sunshine", Min: 8},
			},
			{
				ID:          "climateCheap",
				Label:       "Whatever is cheapest",
				Description: "I'll tolerate any climate if the price is right",
				WeightMods:  map[string]float64{"climate": 0.3, "financial": 1.5},
			},
		},
	},
	{
		ID:       "building",
		Title:    "Building & Permitting",
		Subtitle: "How important is construction freedom?",
		Type:     TypeSingle,
		Options: []Option{
			{
				ID:          "maxFreedom",
				Label:       "Maximum freedom",
				Description: "Owner-build, self-certify, minimal inspections",
				WeightMods:  map[string]float64{"buildingFreedom": 2.5},
			},
			{
				ID:          "standardOk",
				Label:       "Standard process is fine",
				Description: "I'll follow the process as long as it's reasonable",
				WeightMods:  map[string]float64{},
			},
			{
				ID:          "hireGC",
				Label:       "I'll hire a contractor",
				Description: "Permitting complexity doesn't affect me much",
				WeightMods:  map[string]float64{"buildingFreedom": 0.3},
			},
		},
	},
	{
		ID:       "social",
		Title:    "Friends & Family",
		Subtitle: "How important is proximity to your NJ/NE social circle?",
		Type:     TypeSingle,
		Options: []Option{
			{
				ID:          "mustDrive",
				Label:       "Must be driveable from NJ",
				Description: "Within 4-5 hours so friends can visit on weekends",
				WeightMods:  map[string]float64{"community": 1.8},
				ScoreFilter: &Condition{CategoryID: "community", CriterionID: "friendsFamily", Min: 6},
			},
			{
				ID:          "directFlights",
				Label:       "Direct flights to East Coast work",
				Description: "Near a major airport with frequent East Coast routes",
				WeightMods:  map[string]float64{"community": 1.3, "transportation": 1.3},
			},
			{
				ID:          "locationFree",
				Label:       "Location independent",
				Description: "We'll go wherever is best, friends can fly",
				WeightMods:  map[string]float64{"community": 0.7},
			},
		},
	},
	{
		ID:       "lifestyle",
		Title:    "Lifestyle Priorities",
		Subtitle: "What matters most for your day-to-day life? (Pick all that apply)",
		Type:     TypeMulti,
		Options: []Option{
			{
				ID:          "outdoor",
				Label:       "Mountain / hiking / outdoor adventure",
				Description: "Access to trails, national parks, skiing, climbing",
				ScoreBonuses: map[string]map[string]int{
					"community":   {"outdoorRec": 2},
					"landQuality": {"terrainViews": 2},
				},
			},
			{
				ID:          "cultural",
				Label:       "Restaurants, arts, events",
				Description: "Within reach of a real cultural scene",
				ScoreBonuses: map[string]map[string]int{
					"community": {"culturalAmenities": 2},
				},
			},
			{
				ID:          "water",
				Label:       "Lake / river / water recreation",
				Description: "Swimming, fishing, kayaking, waterfront",
				ScoreBonuses: map[string]map[string]int{
					"landQuality": {"waterAccess": 3},
				},
			},
			{
				ID:          "privacy",
				Label:       "Rural privacy and seclusion",
				Description: "Can't see neighbors, quiet, off the beaten path",
				ScoreBonuses: map[string]map[string]int{
					"landQuality": {"privacy": 3},
				},
			},
			{
				ID:          "communityFeel",
				Label:       "Small-town community feel",
				Description: "Know your neighbors, local events, tight-knit",
				ScoreBonuses: map[string]map[string]int{
					"community": {"communityFeel": 2},
				},
			},
		},
	},
	{
		ID:       "healthcare",
		Title:    "Healthcare Urgency",
		Subtitle: "How close do you need to be to MG specialist care?",
		Type:     TypeSingle,
		Options: []Option{
			{
				ID:          "mgCritical",
				Label:       "Within 30 minutes",
				Description: "Active treatment, need immediate access to neurologist",
				WeightMods:  map[string]float64{"healthcare": 2.5},
				ScoreFilter: &Condition{CategoryID: "healthcare", CriterionID: "mgDistance", Min: 8},
			},
			{
				ID:          "mgImportant",
				Label:       "60-90 minutes is fine",
				Description: "Stable condition, quarterly visits, manageable drive",
				WeightMods:  map[string]float64{"healthcare": 1.5},
			},
			{
				ID:          "mgFlexible",
				Label:       "I'll travel for specialist care",
				Description: "Willing to fly for appointments, telemedicine for routine",
				WeightMods:  map[string]float64{"healthcare": 0.7},
			},
		},
	},
	{
		ID:       "region",
		Title:    "Region Preference",
		Subtitle: "Any regions you want to focus on? (Skip to see all)",
		Type:     TypeMulti,
		Options: []Option{
			{ID: "pnw", Label: "Pacific Northwest", Description: "WA, OR, no income tax (WA), mild climate, green", TagFilter: "pnw"},
			{ID: "southwest", Label: "Southwest", Description: "AZ, owner-builder paradise, dry sunshine, cheap", TagFilter: "southwest"},
			{ID: "texas", Label: "Texas Hill Country", Description: "No income tax, Hill Country beauty, Austin/SA access", TagFilter: "texas"},
			{ID: "southeast", Label: "Southeast", Description: "TN, NC, SC, no income tax (TN), mild 4 seasons, growing", TagFilter: "southeast"},
			{ID: "mountainwest", Label: "Mountain West", Description: "ID, NV, MT, UT, scenic, outdoor lifestyle, growing", TagFilter: "mountain west"},
			{ID: "midwest", Label: "Midwest", Description: "IN, CO, low taxes, affordable, 4 seasons", TagFilter: "midwest"},
			{ID: "northeast", Label: "Northeast", Description: "NH, MA, ME, Mass General access, NJ friends, top schools", TagFilter: "northeast"},
		},
	},
}
