package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Ext is the deck file extension.
const Ext = ".ucgdeck"

// ErrInvalidDeck is returned for deck files that cannot be decoded.
var ErrInvalidDeck = errors.New("invalid deck file")

type deckFile struct {
	Boss  *string        `json:"boss"`
	Cards map[string]int `json:"deck"`
}

// MarshalJSON writes the .ucgdeck layout. An empty boss slot is null and
// the main deck keeps deck order.
func (d Deck) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"boss":`)
	if d.Boss == "" {
		buf.WriteString("null")
	} else if err := writeJSONString(&buf, d.Boss); err != nil {
		return nil, err
	}
	buf.WriteString(`,"deck":{`)
	for i, p := range d.Paths() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, p); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(d.Cards[p]))
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// UnmarshalJSON reads the .ucgdeck layout, dropping entries with a
// quantity below 1.
func (d *Deck) UnmarshalJSON(data []byte) error {
	var f deckFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	d.Boss = ""
	if f.Boss != nil {
		d.Boss = *f.Boss
	}
	keys, err := deckKeys(data)
	if err != nil {
		return err
	}
	d.Cards = make(map[string]int, len(f.Cards))
	d.order = d.order[:0]
	for _, p := range keys {
		if _, dup := d.Cards[p]; dup {
			continue
		}
		if q := f.Cards[p]; q > 0 {
			d.Cards[p] = q
			d.order = append(d.order, p)
		}
	}
	return nil
}

// deckKeys returns the keys of the "deck" object in file order.
func deckKeys(data []byte) ([]string, error) {
	var raw struct {
		Cards json.RawMessage `json:"deck"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.Cards) == 0 || string(raw.Cards) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Cards))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("deck key %v is not a string", tok)
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// Load reads a deck file. The deck is named after the file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d := New(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDeck, path, err)
	}
	return d, nil
}

// Save writes d to path, adding the deck extension when missing.
func Save(path string, d *Deck) (string, error) {
	if filepath.Ext(path) != Ext {
		path += Ext
	}
	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write deck: %w", err)
	}
	return path, nil
}

// ShareText is the compact JSON form of the deck used for QR share codes.
func ShareText(d *Deck) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
