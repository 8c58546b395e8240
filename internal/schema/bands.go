package schema

// Band is one row of the canonical score-band table. Letter grade, display
// color, and qualitative label are all derived from the same table so the
// presentations cannot drift apart.
type Band struct {
	Min    float64 `json:"min"`
	Letter string  `json:"letter"`
	Color  string  `json:"color"`
	Label  string  `json:"label"`
}

// bands is ordered highest threshold first; the first row whose Min the
// score meets wins. Colors follow the green 8-10 / blue 6-7 / amber 4-5 /
// red 1-3 presentation bands.
var bands = []Band{
	{Min: 9, Letter: "A+", Color: "green", Label: "Excellent"},
	{Min: 8, Letter: "A", Color: "green", Label: "Good"},
	{Min: 7, Letter: "B+", Color: "blue", Label: "Good"},
	{Min: 6, Letter: "B", Color: "blue", Label: "Average"},
	{Min: 5, Letter: "C+", Color: "amber", Label: "Average"},
	{Min: 4, Letter: "C", Color: "amber", Label: "Below Avg"},
	{Min: 3, Letter: "D", Color: "red", Label: "Below Avg"},
	{Min: 0, Letter: "F", Color: "red", Label: "Poor"},
}

// unscoredBand is returned for scores <= 0, which mean "not yet evaluated".
var unscoredBand = Band{Min: 0, Letter: "--", Color: "gray", Label: ""}

// BandFor maps a 0-10 score to its band. Scores at or below zero map to the
// unscored band.
func BandFor(score float64) Band {
	if score <= 0 {
		return unscoredBand
	}
	for _, b := range bands {
		if score >= b.Min {
			return b
		}
	}
	return unscoredBand
}

// LetterGrade returns the letter grade for a score ("--" when unscored).
func LetterGrade(score float64) string {
	return BandFor(score).Letter
}

// ScoreColor returns the presentation color for a score.
func ScoreColor(score float64) string {
	return BandFor(score).Color
}

// ScoreLabel returns the qualitative label for a score.
func ScoreLabel(score float64) string {
	return BandFor(score).Label
}
