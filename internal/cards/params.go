package cards

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Vocabulary is the shared, deduplicated set of tags offered when editing cards.
type Vocabulary struct {
	tags map[string]struct{}
}

// NewVocabulary creates a vocabulary from the given tags, ignoring blanks.
func NewVocabulary(tags ...string) *Vocabulary {
	v := &Vocabulary{tags: map[string]struct{}{}}
	for _, t := range tags {
		v.Add(t)
	}
	return v
}

// ScanParams collects every tag used by cards.
func ScanParams(cards []Card) *Vocabulary {
	v := NewVocabulary()
	for _, c := range cards {
		for _, p := range c.Param {
			v.Add(p)
		}
	}
	return v
}

// LoadVocabulary reads a JSON array of tags.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewVocabulary(tags...), nil
}

// Add inserts tag and reports whether it was new.
func (v *Vocabulary) Add(tag string) bool {
	if tag == "" {
		return false
	}
	if _, ok := v.tags[tag]; ok {
		return false
	}
	v.tags[tag] = struct{}{}
	return true
}

// Remove deletes tags; missing ones are ignored.
func (v *Vocabulary) Remove(tags ...string) {
	for _, t := range tags {
		delete(v.tags, t)
	}
}

// Contains reports whether tag is known.
func (v *Vocabulary) Contains(tag string) bool {
	_, ok := v.tags[tag]
	return ok
}

// List returns the tags sorted.
func (v *Vocabulary) List() []string {
	out := make([]string, 0, len(v.tags))
	for t := range v.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Save writes the sorted tags as an indented JSON array.
func (v *Vocabulary) Save(path string) error {
	data, err := json.MarshalIndent(v.List(), "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
