package cards

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/youruser/ucgdeck/internal/logger"
)

// ErrNoDataDir is returned when the card data directory does not exist.
var ErrNoDataDir = errors.New("card data directory not found")

func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// LoadCardsFromDataDir loads every *.json card below dataDir (best-effort).
// Unreadable or malformed files are logged and skipped. The result is
// sorted by name.
func LoadCardsFromDataDir(dataDir string, log logger.Logger) ([]Card, error) {
	if _, err := os.Stat(dataDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDataDir, dataDir)
	}

	var all []Card
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		c, err := LoadCard(path)
		if err != nil {
			log.Warn("Error loading %s: %v", d.Name(), err)
			return nil
		}
		all = append(all, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dataDir, err)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	log.Debug("Loaded %d cards from %s", len(all), dataDir)
	return all, nil
}

// LoadCard reads a single card file.
func LoadCard(path string) (Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Card{}, err
	}
	var c Card
	if err := json.Unmarshal(data, &c); err != nil {
		return Card{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	c.Path = path
	return c, nil
}

// SaveCard writes c as indented JSON, keeping only the fields its type carries.
func SaveCard(path string, c Card) error {
	data, err := json.MarshalIndent(c.ForSave(), "", "    ")
	if err != nil {
		return fmt.Errorf("encode card: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadCardsFromCSV imports cards from a spreadsheet export. Columns are
// matched by header name; list cells (tags, colors) are split on "/".
// A テキスト cell becomes a single effect.
func LoadCardsFromCSV(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	header := rows[0]
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Card{}
	for i, row := range rows[1:] {
		m := map[string]any{
			"card_type": get(row, "タイプ"),
			"name":      strings.ReplaceAll(get(row, "カード名"), `\n`, "\n"),
			"cost":      get(row, "コスト"),
			"pow":       get(row, "POW"),
		}
		tags := parseListCell(get(row, "特徴"))
		params := make([]any, len(tags))
		for j, t := range tags {
			params[j] = t
		}
		m["param"] = params

		color := map[string]any{}
		for _, c := range parseListCell(get(row, "色")) {
			color[c] = float64(1)
		}
		m["color"] = color

		if text := get(row, "テキスト"); text != "" {
			m["effe"] = []any{map[string]any{
				"type":  get(row, "効果タイプ"),
				"place": get(row, "効果場所"),
				"text":  strings.ReplaceAll(text, `\n`, "\n"),
			}}
		}

		c := FromAccessor(mapAccessor(m))
		if c.CardType == "" {
			return nil, fmt.Errorf("csv %s row %d: missing タイプ", path, i+2)
		}
		c.Path = fmt.Sprintf("%s#%d", path, i+2)
		out = append(out, c)
	}
	return out, nil
}
