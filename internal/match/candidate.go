package match

import (
	"sort"
)

// SuggestThreshold is the minimum score a candidate needs to be suggested.
const SuggestThreshold = 0.5

// Candidate is a known field name scored against a wanted one.
type Candidate struct {
	Name string

	// Score is the normalized similarity in [0, 1]; higher is better.
	Score float64

	// Metadata for debugging/explanation
	NormalizedName   string
	NormalizedWanted string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every candidate name against wanted and returns them sorted
// by score (descending), then by name for determinism.
func Rank(wanted string, candidates []string) CandidateList {
	wantedNorm := NormalizeIdent(wanted)
	wantedStripped := NormalizeIdentWithSuffixStrip(wanted)

	list := make(CandidateList, 0, len(candidates))

	for _, name := range candidates {
		norm := NormalizeIdent(name)

		// use the best of the plain and suffix-stripped forms
		score := LevenshteinNormalized(norm, wantedNorm)
		if stripped := LevenshteinNormalized(NormalizeIdentWithSuffixStrip(name), wantedStripped); stripped > score {
			score = stripped
		}

		list = append(list, Candidate{
			Name:             name,
			Score:            score,
			NormalizedName:   norm,
			NormalizedWanted: wantedNorm,
		})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to limit candidate names resembling wanted, best first.
// Names scoring below SuggestThreshold and exact matches of wanted are left
// out. A negative limit means no limit.
func Suggest(wanted string, candidates []string, limit int) []string {
	var names []string

	for _, c := range Rank(wanted, candidates).AboveThreshold(SuggestThreshold) {
		if limit >= 0 && len(names) == limit {
			break
		}

		if c.Name == wanted {
			continue
		}

		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
