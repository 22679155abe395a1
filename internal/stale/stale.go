package stale

import (
	"math"
	"time"

	"github.com/saddle-tools/indexgen/internal/graph"
	"github.com/saddle-tools/indexgen/internal/index"
)

// Record flags one file as a candidate for removal.
type Record struct {
	LastModified      string   `json:"last_modified"`
	DaysSinceModified int      `json:"days_since_modified"`
	ReferenceCount    int      `json:"reference_count"`
	StalenessScore    float64  `json:"staleness_score"`
	Reasons           []string `json:"reasons"`
}

// Scorer computes staleness records from the index and dependency graph.
// Two formulas exist (this engine's reference check and the stand-alone
// tracker's weighted blend); neither is authoritative, so the choice is an
// explicit named implementation rather than a silent divergence.
type Scorer interface {
	Score(idx index.CodebaseIndex, g graph.Graph, now time.Time) map[string]*Record
}

// ForName maps a config name to a Scorer. Unknown names get the default.
func ForName(name string, thresholdDays int) Scorer {
	if name == "weighted" {
		return &WeightedScorer{ThresholdDays: thresholdDays}
	}
	return &ReferenceScorer{ThresholdDays: thresholdDays}
}

// ReferenceScorer is the engine's binary referenced/unreferenced formula:
// files past the age threshold with no graph reference score
// min(1.0, days / (2 * threshold)).
type ReferenceScorer struct {
	ThresholdDays int
}

// Score flags unreferenced files older than the threshold. Files within the
// threshold are excluded entirely, not scored as zero.
func (s *ReferenceScorer) Score(idx index.CodebaseIndex, g graph.Graph, now time.Time) map[string]*Record {
	records := make(map[string]*Record)
	for relPath, fi := range idx {
		days, ok := daysSince(fi.LastModified, now)
		if !ok || days < s.ThresholdDays {
			continue
		}
		refs := g.ReferenceCount(graph.ModuleName(relPath))
		if refs > 0 {
			continue
		}
		score := math.Min(1.0, float64(days)/float64(s.ThresholdDays*2))
		records[relPath] = &Record{
			LastModified:      fi.LastModified,
			DaysSinceModified: days,
			ReferenceCount:    refs,
			StalenessScore:    round2(score),
			Reasons:           []string{"not_referenced", "old"},
		}
	}
	return records
}

// WeightedScorer is the stand-alone tracker's continuous formula: a 60/40
// blend of an age component and a reference component. Referenced files can
// still appear with a reduced score.
type WeightedScorer struct {
	ThresholdDays int
}

// Score flags every file older than the threshold with a blended score.
func (s *WeightedScorer) Score(idx index.CodebaseIndex, g graph.Graph, now time.Time) map[string]*Record {
	records := make(map[string]*Record)
	for relPath, fi := range idx {
		days, ok := daysSince(fi.LastModified, now)
		if !ok || days < s.ThresholdDays {
			continue
		}
		refs := g.ReferenceCount(graph.ModuleName(relPath))

		ageScore := math.Min(float64(days)/float64(s.ThresholdDays), 1.0)
		refScore := 1.0
		if refs > 0 {
			refScore = math.Max(0, 1.0-float64(refs)/10.0)
		}

		reasons := []string{"old"}
		if refs == 0 {
			reasons = []string{"not_referenced", "old"}
		}
		records[relPath] = &Record{
			LastModified:      fi.LastModified,
			DaysSinceModified: days,
			ReferenceCount:    refs,
			StalenessScore:    round2(ageScore*0.6 + refScore*0.4),
			Reasons:           reasons,
		}
	}
	return records
}

// daysSince converts a persisted timestamp into whole days before now.
func daysSince(lastModified string, now time.Time) (int, bool) {
	if lastModified == "" {
		return 0, false
	}
	t, ok := index.ParseTime(lastModified)
	if !ok {
		return 0, false
	}
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
