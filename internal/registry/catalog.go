package registry

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Record is one hub card.
type Record struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Path        string `yaml:"path"`
	Image       string `yaml:"image"`
	CanonicalID string `yaml:"canonical_id,omitempty"`
}

type catalogFile struct {
	Games []Record `yaml:"games"`
}

// LoadCatalog reads the catalog at path, or the embedded catalog when path
// is empty. Records come back de-duplicated.
func LoadCatalog(path string) ([]Record, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("registry: cannot read catalog %s: %w", path, err)
		}
	}
	records, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return Dedupe(records), nil
}

// ParseCatalog decodes catalog YAML, keeping file order.
func ParseCatalog(data []byte) ([]Record, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("registry: cannot parse catalog: %w", err)
	}
	return f.Games, nil
}

// NormalizeTitle lower-cases title and keeps letters and digits only.
func NormalizeTitle(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Dedupe keeps one record per group, in order of first appearance.
//
// Records group by canonical id. A record without one joins the group of a
// canonical record with the same normalized title, or else groups by that
// title. Within a group the winner is, in order of preference: the record
// whose id equals the canonical id, the record whose path has fewer
// upper-case characters, the earlier record.
func Dedupe(records []Record) []Record {
	canonByTitle := make(map[string]string)
	for _, r := range records {
		if r.CanonicalID == "" {
			continue
		}
		if _, ok := canonByTitle[NormalizeTitle(r.Title)]; !ok {
			canonByTitle[NormalizeTitle(r.Title)] = r.CanonicalID
		}
	}

	groupKey := func(r Record) string {
		if r.CanonicalID != "" {
			return "id:" + r.CanonicalID
		}
		title := NormalizeTitle(r.Title)
		if id, ok := canonByTitle[title]; ok {
			return "id:" + id
		}
		return "title:" + title
	}

	index := make(map[string]int)
	var out []Record

	for _, r := range records {
		key := groupKey(r)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, r)
			continue
		}
		if better(r, out[i]) {
			out[i] = r
		}
	}
	return out
}

// better reports whether candidate should replace current.
func better(candidate, current Record) bool {
	candCanon := candidate.CanonicalID != "" && candidate.ID == candidate.CanonicalID
	currCanon := current.CanonicalID != "" && current.ID == current.CanonicalID
	if candCanon != currCanon {
		return candCanon
	}
	return upperCount(candidate.Path) < upperCount(current.Path)
}

func upperCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}
