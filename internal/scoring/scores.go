// Package scoring implements the composite scoring engine: pure functions
// that reduce per-criterion scores and category weights into category
// averages and a single weighted composite per area.
package scoring

// ScoreEntry is one scored criterion for one area. A Score of 0 means "not
// yet evaluated" and is excluded from every average; it is never treated as
// a zero data point.
type ScoreEntry struct {
	Score int    `json:"score"`
	Notes string `json:"notes,omitempty"`
}

// AreaScores holds one area's entries keyed by category id, then criterion
// id. Missing categories and criteria read as unscored.
type AreaScores map[string]map[string]ScoreEntry

// ClampScore coerces a raw score into the valid [0, 10] range. Out-of-range
// input is clamped at the write boundary rather than rejected.
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// SetScore writes a clamped score for (categoryID, criterionID), creating
// the entry lazily on first write.
func (as AreaScores) SetScore(categoryID, criterionID string, score int) {
	cat, ok := as[categoryID]
	if !ok {
		cat = make(map[string]ScoreEntry)
		as[categoryID] = cat
	}
	entry := cat[criterionID]
	entry.Score = ClampScore(score)
	cat[criterionID] = entry
}

// SetNotes writes free-text notes for (categoryID, criterionID), creating
// the entry lazily on first write.
func (as AreaScores) SetNotes(categoryID, criterionID, notes string) {
	cat, ok := as[categoryID]
	if !ok {
		cat = make(map[string]ScoreEntry)
		as[categoryID] = cat
	}
	entry := cat[criterionID]
	entry.Notes = notes
	cat[criterionID] = entry
}

// Get returns the entry for (categoryID, criterionID); a missing entry reads
// as the zero ScoreEntry, i.e. unscored.
func (as AreaScores) Get(categoryID, criterionID string) ScoreEntry {
	return as[categoryID][criterionID]
}
