// Package corpus loads a local list of known marks (company names,
// product names, famous projects) for offline similarity screening.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/similarity"
)

// Corpus holds the known marks from one corpus file
type Corpus struct {
	Entries []model.CorpusEntry `yaml:"marks"`
}

// Load reads a corpus YAML file
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Parse(data)
}

// Parse decodes corpus YAML
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	for i, entry := range c.Entries {
		if entry.Mark == "" {
			return nil, fmt.Errorf("corpus entry %d has no mark", i)
		}
	}
	return &c, nil
}

// Marks returns just the mark strings, in file order
func (c *Corpus) Marks() []string {
	marks := make([]string, 0, len(c.Entries))
	for _, entry := range c.Entries {
		marks = append(marks, entry.Mark)
	}
	return marks
}

// Screen compares a candidate against every corpus mark and returns the
// matches at or above the similarity threshold, strongest first.
func (c *Corpus) Screen(candidate string, threshold float64) []similarity.MarkMatch {
	return similarity.FindSimilarMarks(candidate, c.Marks(), threshold)
}

// Checks converts corpus matches into indicative taken checks so the
// classifier treats a famous-mark collision like any other search hit.
func (c *Corpus) Checks(candidate string, threshold float64) []model.NamespaceCheck {
	matches := c.Screen(candidate, threshold)

	byMark := make(map[string]model.CorpusEntry, len(c.Entries))
	for _, entry := range c.Entries {
		byMark[entry.Mark] = entry
	}

	checks := make([]model.NamespaceCheck, 0, len(matches))
	for _, match := range matches {
		sim := match.Result
		details := fmt.Sprintf("known mark %q resembles the candidate", match.Mark)
		if entry := byMark[match.Mark]; entry.Registrant != "" {
			details = fmt.Sprintf("known mark %q (%s) resembles the candidate", match.Mark, entry.Registrant)
		}
		checks = append(checks, model.NamespaceCheck{
			Namespace:  model.NamespaceWeb,
			Query:      model.CheckQuery{CandidateMark: candidate, Value: candidate},
			Status:     model.StatusTaken,
			Authority:  model.AuthorityIndicative,
			Details:    details,
			Similarity: &sim,
		})
	}
	return checks
}
