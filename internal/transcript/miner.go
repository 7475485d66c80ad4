// Package transcript mines ordered caption lines for FPL-relevant
// signal: player mentions, discussion topics and a bounded overall
// summary. The mining functions are pure; fetching lives in video.go.
package transcript

import (
	"fmt"
	"sort"
	"strings"
)

// PlayerInfo carries the price/position context appended to a player's
// mention summary. Keyed externally by lowercase full name.
type PlayerInfo struct {
	PriceM   float64
	Position string
}

// PlayerMention is one extracted player with the transcript evidence
// for why they were discussed.
type PlayerMention struct {
	PlayerName string `json:"player_name"`
	Reasoning  string `json:"reasoning"`
}

// Point is one high-level discussion topic with a short summary.
type Point struct {
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}

const (
	maxPlayers       = 10
	maxPoints        = 5
	pointSummaryMax  = 300
	overallCharLimit = 600
)

// Words that mark a line as useful reasoning context for a player.
var reasoningKeywords = []string{
	"price", "cost", "cheap", "value", "rotation", "minutes", "x mins",
	"fixtures", "fixture", "captain", "captaincy", "talisman",
	"differential", "differentials", "punt", "safe", "risk", "explosive",
	"form", "expected", "penalty", "injury", "injuries", "bench",
	"substitute", "nailed",
}

// Keyword-to-topic pairs in priority order: the first matching keyword
// claims the line, so a line mentioning both the captain and fixtures
// counts only toward Captaincy.
var topicKeywords = []struct {
	Keyword string
	Topic   string
}{
	{"captain", "Captaincy"},
	{"captaincy", "Captaincy"},
	{"differential", "Differentials"},
	{"differentials", "Differentials"},
	{"fixtures", "Fixtures Analysis"},
	{"fixture", "Fixtures Analysis"},
	{"rotation", "Rotation"},
	{"minutes", "Rotation"},
	{"injury", "Injuries"},
	{"injuries", "Injuries"},
	{"goalkeeper", "Goalkeepers"},
	{"keepers", "Goalkeepers"},
	{"bench", "Benching"},
	{"wildcard", "Wildcard"},
	{"free hit", "Free Hit"},
	{"chip", "Chips"},
}

// Words that mark a line as worth including in the overall summary.
var priorityWords = []string{
	"player", "players", "captain", "captaincy", "fixtures", "fixture",
	"differential", "minutes", "rotation", "rank", "team",
}

// ExtractPlayers finds the most-mentioned players in the transcript.
// Matching is a lowercase full-name substring check per line: coarse
// on purpose, trading nickname recall for simplicity. Up to ten
// players are returned, ranked by mention count; each gets reasoning
// built from keyword-bearing mention lines (falling back to the first
// three mentions) with price and position appended when known.
func ExtractPlayers(lines []string, lookup map[string]PlayerInfo) []PlayerMention {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	linesByPlayer := make(map[string][]string)
	for i, line := range lines {
		lower := strings.ToLower(line)
		for name := range lookup {
			if !strings.Contains(lower, name) {
				continue
			}
			if counts[name] == 0 {
				firstSeen[name] = i
			}
			counts[name]++
			linesByPlayer[name] = append(linesByPlayer[name], strings.TrimSpace(line))
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		if firstSeen[names[i]] != firstSeen[names[j]] {
			return firstSeen[names[i]] < firstSeen[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > maxPlayers {
		names = names[:maxPlayers]
	}

	out := make([]PlayerMention, 0, len(names))
	for _, name := range names {
		mentions := linesByPlayer[name]
		var keywordLines []string
		for _, ln := range mentions {
			if containsAny(strings.ToLower(ln), reasoningKeywords) {
				keywordLines = append(keywordLines, ln)
			}
		}
		selected := keywordLines
		if len(selected) == 0 {
			selected = mentions
			if len(selected) > 3 {
				selected = selected[:3]
			}
		}
		reasoning := strings.TrimSpace(strings.Join(selected, " "))
		if info, ok := lookup[name]; ok && info.Position != "" {
			reasoning = fmt.Sprintf("%s (Price: £%.1fm, Position: %s)", reasoning, info.PriceM, info.Position)
		}
		out = append(out, PlayerMention{PlayerName: titleCase(name), Reasoning: reasoning})
	}
	return out
}

// MainPoints clusters transcript lines into up to five topics, ranked
// by how many lines each attracted. Every line lands in at most one
// topic (first matching keyword wins). A topic's summary is its first
// three lines, truncated to 300 characters at a word boundary.
func MainPoints(lines []string) []Point {
	topicLines := make(map[string][]string)
	firstSeen := make(map[string]int)
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, kt := range topicKeywords {
			if strings.Contains(lower, kt.Keyword) {
				if _, ok := topicLines[kt.Topic]; !ok {
					firstSeen[kt.Topic] = i
				}
				topicLines[kt.Topic] = append(topicLines[kt.Topic], strings.TrimSpace(line))
				break
			}
		}
	}

	topics := make([]string, 0, len(topicLines))
	for topic := range topicLines {
		topics = append(topics, topic)
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if len(topicLines[topics[i]]) != len(topicLines[topics[j]]) {
			return len(topicLines[topics[i]]) > len(topicLines[topics[j]])
		}
		return firstSeen[topics[i]] < firstSeen[topics[j]]
	})
	if len(topics) > maxPoints {
		topics = topics[:maxPoints]
	}

	out := make([]Point, 0, len(topics))
	for _, topic := range topics {
		selected := topicLines[topic]
		if len(selected) > 3 {
			selected = selected[:3]
		}
		out = append(out, Point{Topic: topic, Summary: truncateAtWord(strings.Join(selected, " "), pointSummaryMax)})
	}
	return out
}

// Summarize builds a bounded overview in two greedy phases: first
// keyword-bearing lines (up to 5 or the 600-character budget), then,
// with budget remaining, any further non-empty lines up to 7 total.
// The second phase guarantees non-empty output for keyword-sparse
// transcripts.
func Summarize(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	var selected []string
	taken := make(map[int]bool)
	total := 0

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), priorityWords) {
			continue
		}
		if total+len(line)+1 > overallCharLimit {
			break
		}
		selected = append(selected, strings.TrimSpace(line))
		taken[i] = true
		total += len(line) + 1
		if len(selected) >= 5 {
			break
		}
	}

	if total < overallCharLimit {
		for i, line := range lines {
			if taken[i] || strings.TrimSpace(line) == "" {
				continue
			}
			if total+len(line)+1 > overallCharLimit {
				break
			}
			selected = append(selected, strings.TrimSpace(line))
			taken[i] = true
			total += len(line) + 1
			if len(selected) >= 7 {
				break
			}
		}
	}

	return strings.TrimSpace(strings.Join(selected, " "))
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// truncateAtWord clips s to at most max characters, cutting back to
// the previous word boundary and appending an ellipsis.
func truncateAtWord(s string, max int) string {
	if len(s) <= max {
		return s
	}
	clipped := s[:max-3]
	if i := strings.LastIndex(clipped, " "); i > 0 {
		clipped = clipped[:i]
	}
	return clipped + "…"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[:1])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
