// Package insights derives behavioral insights from a snapshot of mood
// entries: a week-over-week trend, a day-of-week pattern, and a keyword
// theme read from note text.
//
// Everything here is a pure function of its input. The engine performs
// no I/O, keeps no state, and never fails: on small or malformed input
// it degrades to a guidance message instead of erroring.
package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/moodscape/moodscape/internal/journal"
)

// Insights holds the three independent insight messages.
type Insights struct {
	Trend     string `json:"trend"`
	DayOfWeek string `json:"day_of_week"`
	Keyword   string `json:"keyword"`
}

// Generate computes all three insights from a snapshot of entries. The
// snapshot is not modified; ordering of the input does not matter.
func Generate(entries []journal.EntryWithCategory) Insights {
	return Insights{
		Trend:     analyzeTrend(entries),
		DayOfWeek: analyzeDayOfWeek(entries),
		Keyword:   analyzeKeywords(entries),
	}
}

// ─── Trend ───────────────────────────────────────────────────────────────────

// trendDeadzone is the hysteresis band around the prior-week average.
// Deltas within ±0.5 read as "stable" so the message doesn't flip-flop
// on noise.
const trendDeadzone = 0.5

func analyzeTrend(entries []journal.EntryWithCategory) string {
	if len(entries) < 7 {
		return "Not enough data yet. Log more moods to see trends!"
	}

	sorted := make([]journal.EntryWithCategory, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DayKey > sorted[j].DayKey
	})

	recentWeek := sorted[:7]
	priorWeek := sorted[7:]
	if len(priorWeek) > 7 {
		priorWeek = priorWeek[:7]
	}

	if len(priorWeek) == 0 {
		return "Keep logging to see your mood trends over time!"
	}

	recentAvg := meanScore(recentWeek)
	priorAvg := meanScore(priorWeek)

	switch {
	case recentAvg > priorAvg+trendDeadzone:
		return "Your mood has improved this week! 🎉"
	case recentAvg < priorAvg-trendDeadzone:
		return "Your mood has declined slightly this week. Take care! 💙"
	default:
		return "Your mood has been relatively stable this week."
	}
}

func meanScore(entries []journal.EntryWithCategory) float64 {
	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	return float64(sum) / float64(len(entries))
}

// ─── Day-of-week pattern ─────────────────────────────────────────────────────

func analyzeDayOfWeek(entries []journal.EntryWithCategory) string {
	if len(entries) < 14 {
		return "Log more moods to discover your weekly patterns!"
	}

	var sums [7]int
	var counts [7]int
	for _, e := range entries {
		d := journal.Weekday(e.DayKey)
		sums[d] += e.Score
		counts[d]++
	}

	// Scan Sunday..Saturday so ties resolve to the earliest day.
	happiest, saddest := time.Weekday(-1), time.Weekday(-1)
	var maxAvg, minAvg float64
	populated := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if counts[d] == 0 {
			continue
		}
		populated++
		avg := float64(sums[d]) / float64(counts[d])
		if happiest < 0 || avg > maxAvg {
			happiest, maxAvg = d, avg
		}
		if saddest < 0 || avg < minAvg {
			saddest, minAvg = d, avg
		}
	}

	switch {
	case populated == 0:
		return "Not enough data to analyze day patterns yet."
	case happiest >= 0 && saddest >= 0 && happiest != saddest:
		return fmt.Sprintf("You're happiest on %s and tend to feel lower on %s.", happiest, saddest)
	case happiest >= 0:
		return fmt.Sprintf("You're consistently happiest on %s.", happiest)
	default:
		return "Your mood varies throughout the week without a clear pattern."
	}
}

// ─── Keyword themes ──────────────────────────────────────────────────────────

// Fixed affect/topic term sets, matched case-insensitively against
// whole tokens.
var (
	positiveWords = wordSet("happy", "good", "great", "love", "joy", "excited", "wonderful", "amazing", "fantastic")
	negativeWords = wordSet("sad", "bad", "terrible", "hate", "angry", "frustrated", "worried", "stressed", "anxious")
	workWords     = wordSet("work", "job", "office", "boss", "colleague", "meeting", "deadline", "project")
	familyWords   = wordSet("family", "mom", "dad", "parent", "child", "kid", "spouse", "partner", "friend")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func analyzeKeywords(entries []journal.EntryWithCategory) string {
	var notes []string
	for _, e := range entries {
		if strings.TrimSpace(e.Note) != "" {
			notes = append(notes, strings.ToLower(e.Note))
		}
	}
	if len(notes) == 0 {
		return "Add notes to your mood entries to discover keyword insights!"
	}

	words := tokenize(strings.Join(notes, " "))

	var positive, negative, work, family int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			positive++
		}
		if _, ok := negativeWords[w]; ok {
			negative++
		}
		if _, ok := workWords[w]; ok {
			work++
		}
		if _, ok := familyWords[w]; ok {
			family++
		}
	}

	// Branch order matters: equal positive/negative counts (including
	// both zero) fall through to the work/family checks.
	switch {
	case positive > negative && positive > 0:
		return "You use more positive language in your notes. Keep focusing on what makes you happy! 😊"
	case negative > positive && negative > 0:
		return "You've mentioned challenges in your notes. Remember, it's okay to have difficult days. 💪"
	case work > 0 && family > 0:
		return fmt.Sprintf("Your notes mention both work (%d times) and family (%d times). Finding balance is key!", work, family)
	case work > 0:
		return fmt.Sprintf("Work appears frequently in your notes (%d times). Consider stress management techniques.", work)
	case family > 0:
		return fmt.Sprintf("Family is important to you, mentioned %d times in your notes.", family)
	default:
		return "Your notes contain diverse topics. Keep journaling to discover more patterns!"
	}
}

// tokenize splits text on runs of non-word characters, discarding
// empty tokens. Mirrors the store's note search tokenization.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(r == '_' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			r > 127)
	})
}
