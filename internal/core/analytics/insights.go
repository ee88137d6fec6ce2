package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

const (
	maxRecommendations = 5
	maxAchievements    = 3
	maxPatterns        = 5

	shortSessionSeconds    = 900
	extendedSessionSeconds = 7200
)

var workKeywords = []string{"work", "job", "office", "meeting", "project", "coding", "development"}
var lifeKeywords = []string{"family", "friends", "hobby", "exercise", "relax", "entertainment", "personal"}

// GenerateProductivityInsights runs the heuristic rule set over the raw
// record set and returns a capped feed of recommendations, achievements,
// and detected patterns. Rules run in a fixed order and the lists are
// truncated first-N, not by priority.
func GenerateProductivityInsights(s Snapshot) *domain.ProductivityInsights {
	b := &insightBuilder{}
	now := s.Now

	sessions := countableSessions(s.Sessions)
	entries := sortByEntryDate(s.Entries)

	totalGoals, completedGoals := 0, 0
	activeGoals := 0
	for _, g := range s.Goals {
		totalGoals++
		if g.IsCompleted {
			completedGoals++
		} else {
			activeGoals++
		}
	}

	totalTodos, completedTodos, pendingTodos, overdueTodos := 0, 0, 0, 0
	for _, t := range s.Todos {
		totalTodos++
		if t.IsCompleted {
			completedTodos++
		} else {
			pendingTodos++
		}
		if t.IsOverdue(now) {
			overdueTodos++
		}
	}

	goalRate := roundRate(completedGoals, totalGoals)
	todoRate := roundRate(completedTodos, totalTodos)

	if totalGoals > 0 && goalRate < 30 {
		b.recommend("Focus on Smaller Goals",
			"Your goal completion rate is low. Breaking goals into smaller, achievable milestones makes progress visible and sustainable.",
			domain.InsightPriorityHigh)
	}

	if todoRate > 80 {
		b.achieve("Task Master",
			fmt.Sprintf("You completed %d%% of your tasks. Keep it up!", todoRate))
	}

	lastWeek := rollingDays(now, 7)
	recentSessions := 0
	for _, sess := range sessions {
		if lastWeek.Contains(sess.StartTime) {
			recentSessions++
		}
	}
	if recentSessions == 0 {
		b.recommend("Start Time Tracking",
			"No tracked sessions in the last 7 days. Tracking where your time goes is the first step to improving how you spend it.",
			domain.InsightPriorityMedium)
	}

	if overdueTodos > 5 {
		b.recommend("Address Overdue Tasks",
			fmt.Sprintf("You have %d overdue tasks. Reschedule or drop the ones that no longer matter.", overdueTodos),
			domain.InsightPriorityHigh)
	}

	entriesThisWeek := 0
	for _, e := range entries {
		if lastWeek.Contains(e.EntryDate) {
			entriesThisWeek++
		}
	}
	if entriesThisWeek >= 5 {
		b.achieve("Consistent Progress",
			fmt.Sprintf("You logged %d journal entries this week.", entriesThisWeek))
	}
	if entriesThisWeek < 2 {
		b.recommend("Log Daily Progress",
			"Regular journaling makes trends visible. Try to log at least a quick entry every day.",
			domain.InsightPriorityMedium)
	}

	evaluateWellbeingRules(b, entries)
	evaluateBalanceRules(b, s.Activities, sessions)
	evaluateGoalRules(b, s.Goals, s.Todos, now)
	evaluateActivityPreference(b, s.Activities, sessions)
	evaluateMoodTrajectory(b, entries, now)

	recentEntries := 0
	threeDays := rollingDays(now, 3)
	for _, e := range entries {
		if threeDays.Contains(e.EntryDate) {
			recentEntries++
		}
	}
	if activeGoals > 0 && pendingTodos > 10 && recentEntries < 2 {
		b.recommend("Overwhelm Prevention",
			"Many open tasks and little recent journaling often precede burnout. Pick the three tasks that matter most and park the rest.",
			domain.InsightPriorityHigh)
	}

	evaluateAlignment(b, s.Activities, s.Goals)
	evaluatePairedMoodProductivity(b, entries)
	evaluateFortnightWellbeing(b, entries, now)
	evaluateWeekdayPattern(b, entries)
	evaluateSessionLength(b, sessions)
	evaluateActivityTitleBalance(b, s.Activities)

	return b.feed()
}

type insightBuilder struct {
	recs []domain.Recommendation
	achs []domain.Achievement
	pats []domain.PatternInsight
}

func (b *insightBuilder) recommend(title, description, priority string) {
	b.recs = append(b.recs, domain.Recommendation{Title: title, Description: description, Priority: priority})
}

func (b *insightBuilder) achieve(title, description string) {
	b.achs = append(b.achs, domain.Achievement{Title: title, Description: description})
}

func (b *insightBuilder) pattern(title, description, direction string) {
	b.pats = append(b.pats, domain.PatternInsight{Title: title, Description: description, Direction: direction})
}

func (b *insightBuilder) hasPattern(title string) bool {
	for _, p := range b.pats {
		if p.Title == title {
			return true
		}
	}
	return false
}

func (b *insightBuilder) feed() *domain.ProductivityInsights {
	recs := b.recs
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	achs := b.achs
	if len(achs) > maxAchievements {
		achs = achs[:maxAchievements]
	}
	pats := b.pats
	if len(pats) > maxPatterns {
		pats = pats[:maxPatterns]
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	if achs == nil {
		achs = []domain.Achievement{}
	}
	if pats == nil {
		pats = []domain.PatternInsight{}
	}
	return &domain.ProductivityInsights{
		Recommendations: recs,
		Achievements:    achs,
		Patterns:        pats,
	}
}

// evaluateWellbeingRules covers the cross-dimension correlation rules.
// They only run with at least 3 complete mood/productivity/health/sleep
// tuples.
func evaluateWellbeingRules(b *insightBuilder, entries []*domain.ProgressEntry) {
	w := buildWellbeingSeries(entries)
	if w.size() < 3 {
		return
	}

	if Correlation(w.mood, w.prod) > 0.6 {
		b.pattern("Strong Mood-Productivity Link",
			"Your productivity satisfaction closely tracks your mood. Protecting your mood protects your output.",
			domain.DirectionPositive)
	}
	if Correlation(w.health, w.prod) > 0.5 {
		b.pattern("Health Drives Productivity",
			"Days you feel healthier are days you feel more productive.",
			domain.DirectionPositive)
	}
	if Correlation(w.sleep, w.mood) > 0.4 {
		b.pattern("Sleep Affects Mood",
			"More sleep lines up with better mood in your entries.",
			domain.DirectionPositive)
	}
	if Correlation(w.sleep, w.health) > 0.4 {
		b.pattern("Sleep-Health Connection",
			"Your health feeling rises and falls with how much you sleep.",
			domain.DirectionPositive)
	}

	if mean(w.sleep) < 7 {
		b.recommend("Improve Sleep Duration",
			fmt.Sprintf("You average %.1f hours of sleep. Most adults need at least 7.", mean(w.sleep)),
			domain.InsightPriorityHigh)
	}

	first := w.health[:min(3, len(w.health))]
	last := w.health[max(0, len(w.health)-3):]
	if mean(first)-mean(last) > 0.5 {
		b.recommend("Health Attention Needed",
			"Your recent health scores dropped compared to earlier entries. Consider what changed.",
			domain.InsightPriorityHigh)
	}
}

// evaluateBalanceRules checks how tracked time splits between work-like
// and life-like activities, using naive keyword matching on titles.
func evaluateBalanceRules(b *insightBuilder, activities []*domain.Activity, sessions []*domain.TimeSession) {
	seconds := make(map[string]int)
	total := 0
	for _, sess := range sessions {
		d := sess.DurationSeconds()
		seconds[sess.ActivityID] += d
		total += d
	}
	if total == 0 {
		return
	}

	workTime, lifeTime := 0, 0
	for _, a := range activities {
		t := seconds[a.ID]
		if t == 0 {
			continue
		}
		if matchesAny(a.Title, workKeywords) {
			workTime += t
		}
		if matchesAny(a.Title, lifeKeywords) {
			lifeTime += t
		}
	}

	workShare := float64(workTime) / float64(total)
	lifeShare := float64(lifeTime) / float64(total)

	if workShare > 0.7 {
		b.recommend("Work-Life Balance",
			fmt.Sprintf("%.0f%% of your tracked time is work-related. Deliberately schedule something that is not.", workShare*100),
			domain.InsightPriorityMedium)
	}
	if lifeShare < 0.2 && workShare > 0.5 {
		b.recommend("Schedule Personal Time",
			"Personal activities barely register in your tracked time. Put one on the calendar this week.",
			domain.InsightPriorityHigh)
	}
}

// evaluateGoalRules flags near-deadline goals whose keyword-related todos
// lag behind, and confirms the ones on track.
func evaluateGoalRules(b *insightBuilder, goals []*domain.Goal, todos []*domain.Todo, now time.Time) {
	for _, g := range goals {
		if g.IsCompleted || g.TargetDate == nil {
			continue
		}

		daysLeft := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
		if daysLeft < 0 {
			daysLeft = 0
		}

		kw := firstWord(g.Title)
		if kw == "" {
			kw = firstWord(g.Description)
		}
		if kw == "" {
			continue
		}

		related, done := 0, 0
		for _, t := range todos {
			if strings.Contains(strings.ToLower(t.Title), kw) {
				related++
				if t.IsCompleted {
					done++
				}
			}
		}
		if related == 0 {
			continue
		}

		share := float64(done) / float64(related)
		if daysLeft <= 7 && share < 0.5 {
			b.recommend(fmt.Sprintf("Goal At Risk: %s", g.Title),
				fmt.Sprintf("The target date is %d days away but only %d of %d related tasks are done.", daysLeft, done, related),
				domain.InsightPriorityHigh)
		} else if daysLeft <= 30 && share > 0.8 {
			b.pattern("Goal On Track",
				fmt.Sprintf("\"%s\" is on pace: most related tasks are already done.", g.Title),
				domain.DirectionPositive)
		}
	}
}

// evaluateActivityPreference flags a strong skew among activities that
// actually have tracked time.
func evaluateActivityPreference(b *insightBuilder, activities []*domain.Activity, sessions []*domain.TimeSession) {
	seconds := make(map[string]int)
	for _, sess := range sessions {
		seconds[sess.ActivityID] += sess.DurationSeconds()
	}

	titles := make(map[string]string, len(activities))
	for _, a := range activities {
		titles[a.ID] = a.Title
	}

	maxID, minID := "", ""
	maxTime, minTime := 0, 0
	engaged := 0
	for id, t := range seconds {
		if t == 0 {
			continue
		}
		engaged++
		if maxID == "" || t > maxTime {
			maxID, maxTime = id, t
		}
		if minID == "" || t < minTime {
			minID, minTime = id, t
		}
	}

	if engaged >= 2 && maxTime > 3*minTime {
		b.pattern("Activity Preference",
			fmt.Sprintf("You spend over 3x more time on %q than on %q.", titles[maxID], titles[minID]),
			domain.DirectionNeutral)
	}
}

// evaluateMoodTrajectory compares the first and last mood score of the
// last 7 days.
func evaluateMoodTrajectory(b *insightBuilder, entries []*domain.ProgressEntry, now time.Time) {
	week := rollingDays(now, 7)

	var scores []float64
	for _, e := range entries {
		if week.Contains(e.EntryDate) && e.Mood.IsSet() {
			scores = append(scores, float64(e.Mood.Score()))
		}
	}
	if len(scores) < 2 {
		return
	}

	diff := scores[len(scores)-1] - scores[0]
	if diff > 1 {
		b.achieve("Mood Improvement",
			"Your mood climbed noticeably over the last week.")
	} else if diff < -1 {
		b.recommend("Mood Support",
			"Your mood dropped over the last week. Be kind to yourself and consider reaching out to someone you trust.",
			domain.InsightPriorityHigh)
	}
}

// evaluateAlignment checks whether tracked activities relate to active
// goals at all, by first-word keyword overlap.
func evaluateAlignment(b *insightBuilder, activities []*domain.Activity, goals []*domain.Goal) {
	var activeGoals []*domain.Goal
	for _, g := range goals {
		if !g.IsCompleted {
			activeGoals = append(activeGoals, g)
		}
	}
	if len(activities) == 0 || len(activeGoals) == 0 {
		return
	}

	aligned := 0
	for _, a := range activities {
		title := strings.ToLower(a.Title)
		for _, g := range activeGoals {
			kw := firstWord(g.Title)
			if kw != "" && strings.Contains(title, kw) {
				aligned++
				break
			}
		}
	}

	threshold := float64(len(activities)) * 0.5
	if goalHalf := float64(len(activeGoals)) * 0.5; goalHalf < threshold {
		threshold = goalHalf
	}
	if float64(aligned) < threshold {
		b.recommend("Align Activities with Goals",
			"Little of your tracked time maps to your active goals. Either track the work toward them or rethink the goals.",
			domain.InsightPriorityMedium)
	}
}

// evaluatePairedMoodProductivity re-runs the mood/productivity correlation
// over a wider population (any entry with both fields, at least 5 pairs).
// The positive pattern is duplicate-safe against the correlation rule set.
func evaluatePairedMoodProductivity(b *insightBuilder, entries []*domain.ProgressEntry) {
	var mood, prod []float64
	for _, e := range entries {
		if e.Mood.IsSet() && e.ProductivitySatisfaction.IsSet() {
			mood = append(mood, float64(e.Mood.Score()))
			prod = append(prod, float64(e.ProductivitySatisfaction.Score()))
		}
	}
	if len(mood) < 5 {
		return
	}

	corr := Correlation(mood, prod)
	if corr > 0.6 && !b.hasPattern("Strong Mood-Productivity Link") {
		b.pattern("Strong Mood-Productivity Link",
			"Your productivity satisfaction closely tracks your mood. Protecting your mood protects your output.",
			domain.DirectionPositive)
	}
	if corr < -0.3 {
		b.pattern("Inverse Mood-Productivity Pattern",
			"Oddly, your most productive-feeling days are not your best-mood days. Watch for overwork on good days.",
			domain.DirectionNeutral)
	}
}

func evaluateFortnightWellbeing(b *insightBuilder, entries []*domain.ProgressEntry, now time.Time) {
	window := rollingDays(now, 14)

	var mood, prod []float64
	for _, e := range entries {
		if !window.Contains(e.EntryDate) {
			continue
		}
		if e.Mood.IsSet() {
			mood = append(mood, float64(e.Mood.Score()))
		}
		if e.ProductivitySatisfaction.IsSet() {
			prod = append(prod, float64(e.ProductivitySatisfaction.Score()))
		}
	}

	if len(mood) > 0 {
		avg := mean(mood)
		if avg >= 4.0 {
			b.achieve("Positive Wellbeing",
				"Your average mood over the last two weeks is high.")
		} else if avg <= 2.5 {
			b.recommend("Focus on Wellbeing",
				"Your average mood over the last two weeks is low. Consider prioritizing rest and the activities that usually lift you.",
				domain.InsightPriorityHigh)
		}
	}
	if len(prod) > 0 && mean(prod) <= 2.5 {
		b.recommend("Improve Productivity Satisfaction",
			"You have been consistently unhappy with your productivity. Review what a good day actually looks like for you.",
			domain.InsightPriorityMedium)
	}
}

// evaluateWeekdayPattern looks for a best and worst day of the week among
// days with at least two entries.
func evaluateWeekdayPattern(b *insightBuilder, entries []*domain.ProgressEntry) {
	type bucket struct {
		sum   float64
		count int
	}
	byDay := make(map[time.Weekday]*bucket)

	for _, e := range entries {
		var scores []float64
		if e.Mood.IsSet() {
			scores = append(scores, float64(e.Mood.Score()))
		}
		if e.ProductivitySatisfaction.IsSet() {
			scores = append(scores, float64(e.ProductivitySatisfaction.Score()))
		}
		if len(scores) == 0 {
			continue
		}
		wd := e.EntryDate.Weekday()
		bk := byDay[wd]
		if bk == nil {
			bk = &bucket{}
			byDay[wd] = bk
		}
		bk.sum += mean(scores)
		bk.count++
	}

	var bestDay, worstDay time.Weekday
	bestAvg, worstAvg := -1.0, -1.0
	qualifying := 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		bk := byDay[wd]
		if bk == nil || bk.count < 2 {
			continue
		}
		qualifying++
		avg := bk.sum / float64(bk.count)
		if bestAvg < 0 || avg > bestAvg {
			bestDay, bestAvg = wd, avg
		}
		if worstAvg < 0 || avg < worstAvg {
			worstDay, worstAvg = wd, avg
		}
	}

	if qualifying >= 2 && bestAvg > worstAvg {
		b.pattern("Weekly Wellbeing Pattern",
			fmt.Sprintf("%ss tend to be your best days and %ss your worst.", bestDay, worstDay),
			domain.DirectionNeutral)
	}
}

func evaluateSessionLength(b *insightBuilder, sessions []*domain.TimeSession) {
	if len(sessions) == 0 {
		return
	}

	total := 0
	for _, sess := range sessions {
		total += sess.DurationSeconds()
	}
	avg := float64(total) / float64(len(sessions))

	if avg < shortSessionSeconds {
		b.pattern("Short Focus Sessions",
			"Your sessions average under 15 minutes. Frequent context switching erodes deep work.",
			domain.DirectionNegative)
	} else if avg > extendedSessionSeconds {
		b.pattern("Extended Focus Sessions",
			"Your sessions average over 2 hours. That is strong sustained focus; remember to take breaks.",
			domain.DirectionPositive)
	}
}

func evaluateActivityTitleBalance(b *insightBuilder, activities []*domain.Activity) {
	work, personal := 0, 0
	for _, a := range activities {
		if matchesAny(a.Title, workKeywords) {
			work++
		}
		if matchesAny(a.Title, lifeKeywords) {
			personal++
		}
	}
	if work > 0 && work > 3*personal {
		b.recommend("Consider Work-Life Balance",
			"Nearly all of your activities are work-related. Add a personal one worth tracking.",
			domain.InsightPriorityMedium)
	}
}

// firstWord returns the lowercased first whitespace-separated token, the
// unit the naive keyword matching operates on.
func firstWord(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func matchesAny(title string, keywords []string) bool {
	w := firstWord(title)
	if w == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(w, kw) {
			return true
		}
	}
	return false
}
