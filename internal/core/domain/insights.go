package domain

const (
	InsightPriorityHigh   = "high"
	InsightPriorityMedium = "medium"
	InsightPriorityLow    = "low"
)

const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"
	DirectionNeutral  = "neutral"
)

// ProductivityInsights is the rule-engine feed. The caps are part of the
// contract: at most 5 recommendations, 3 achievements, 5 patterns.
type ProductivityInsights struct {
	Recommendations []Recommendation `json:"recommendations"`
	Achievements    []Achievement    `json:"achievements"`
	Patterns        []PatternInsight `json:"patterns"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PatternInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Direction   string `json:"direction"`
}
