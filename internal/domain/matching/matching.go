// Package matching filters and ranks whisper-match candidates.
//
// The engine never computes match scores; scores arrive from the
// dataset provider already ranked. This package derives strength tiers
// from those scores and narrows the candidate set by free text and
// discipline category without disturbing the provider's ordering.
package matching

import (
	"github.com/craftaddis/whisper/internal/domain/model"
	"github.com/craftaddis/whisper/internal/domain/textmatch"
)

// Default tier thresholds.
const (
	defaultHighThreshold   = 85
	defaultMediumThreshold = 70
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Tier is the semantic strength band of a match score.
type Tier string

// Strength tiers, strongest first.
const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Query narrows a match feed. Zero value selects everything.
type Query struct {
	Search   string // matched against candidate name, discipline and intent
	Category string // "All" or empty disables the discipline filter
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTierThresholds sets the high and medium score cutoffs.
func WithTierThresholds(high, medium float64) Option {
	return func(e *Engine) {
		if high > medium && medium > 0 {
			e.highThreshold = high
			e.mediumThreshold = medium
		}
	}
}

// Engine filters candidate matches and derives score tiers.
type Engine struct {
	highThreshold   float64
	mediumThreshold float64
}

// New creates an Engine with default tier thresholds.
func New(opts ...Option) *Engine {
	e := &Engine{
		highThreshold:   defaultHighThreshold,
		mediumThreshold: defaultMediumThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Filter returns the subset of matches satisfying q, preserving input
// order. Callers control display ordering through the input; the
// canonical base collection arrives sorted by score descending. An
// empty input yields an empty result, never an error.
func (e *Engine) Filter(matches []model.WhisperMatch, q Query) []model.WhisperMatch {
	out := make([]model.WhisperMatch, 0, len(matches))
	for _, m := range matches {
		if !matchesSearch(m, q.Search) {
			continue
		}
		if !matchesCategory(m, q.Category) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TierOf derives the strength tier for a score. Total over all float
// inputs: out-of-range and NaN scores are clamped first, so a defined
// tier always comes back.
func (e *Engine) TierOf(score float64) Tier {
	score = model.ClampScore(score)
	switch {
	case score >= e.highThreshold:
		return TierHigh
	case score >= e.mediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// KeywordChips exposes the matched keywords for display. Uniqueness is
// the provider's responsibility; no dedupe happens here.
func (e *Engine) KeywordChips(m model.WhisperMatch) []string {
	return m.MatchedKeywords
}

func matchesSearch(m model.WhisperMatch, search string) bool {
	return textmatch.Matches(m.User.Name, search) ||
		textmatch.Matches(string(m.User.Discipline), search) ||
		textmatch.Matches(m.TheirIntent, search)
}

func matchesCategory(m model.WhisperMatch, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return textmatch.Matches(string(m.User.Discipline), category)
}
