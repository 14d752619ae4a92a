package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/fonts"
	imagepkg "github.com/youruser/ucgdeck/internal/image"
	"github.com/youruser/ucgdeck/internal/logger"
	"github.com/youruser/ucgdeck/internal/render"
)

func fixtureCards() []cards.Card {
	mk := func(t cards.CardType, name, path string, cost int, tags ...string) cards.Card {
		c := cards.NewCard(t)
		c.Name = name
		c.Path = path
		c.Cost = cost
		if len(tags) > 0 {
			c.Param = tags
		}
		return c
	}
	return []cards.Card{
		mk(cards.TypeCharacter, "Knight", "data/knight.json", 2, "Human"),
		mk(cards.TypeCharacter, "Dragon", "data/dragon.json", 5, "Dragon"),
		mk(cards.TypeItem, "Potion", "data/potion.json", 1),
		mk(cards.TypeBoss, "Lich", "data/lich.json", 0),
	}
}

func newTestEngine(t *testing.T, dataDir string) (*gin.Engine, *cards.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cards.NewStore()
	store.Replace(cards.NewCorpus(fixtureCards()))

	log := logger.NewNoop()
	h := NewHandler(Options{
		Store:    store,
		Renderer: render.New(fonts.NewLoader(filepath.Join(t.TempDir(), "none.ttf"), log), log),
		Render:   render.Defaults(),
		Workers:  2,
		DataDir:  dataDir,
		Logger:   log,
	})
	r := gin.New()
	RegisterRoutes(r, h)
	return r, store
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestEngine(t, "")
	w := do(r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","cards":4}`, w.Body.String())
}

type filterResponse struct {
	Count int `json:"count"`
	Cards []struct {
		Path string         `json:"path"`
		Card map[string]any `json:"card"`
	} `json:"cards"`
}

func TestFilter(t *testing.T) {
	r, _ := newTestEngine(t, "")

	w := do(r, http.MethodPost, "/api/filter", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	var resp filterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "data/dragon.json", resp.Cards[0].Path)
	assert.Equal(t, "Dragon", resp.Cards[0].Card["name"])

	w = do(r, http.MethodPost, "/api/filter", map[string]any{"type": "BOSS"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = filterResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Lich", resp.Cards[0].Card["name"])
}

func TestFilter_BadBody(t *testing.T) {
	r, _ := newTestEngine(t, "")
	req := httptest.NewRequest(http.MethodPost, "/api/filter", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParams(t *testing.T) {
	r, _ := newTestEngine(t, "")
	w := do(r, http.MethodGet, "/api/params", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"params":["Dragon","Human"]}`, w.Body.String())
}

func TestRender(t *testing.T) {
	r, _ := newTestEngine(t, "")
	body := map[string]any{
		"card": map[string]any{"card_type": "アイテム", "name": "Sword", "cost": 2},
		"overrides": map[string]any{
			"font_sizes": map[string]any{"name_1line": 30},
		},
	}
	w := do(r, http.MethodPost, "/api/render", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, render.CardWidth, img.Bounds().Dx())
	assert.Equal(t, render.CardHeight, img.Bounds().Dy())

	w = do(r, http.MethodPost, "/api/render", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSheets(t *testing.T) {
	r, _ := newTestEngine(t, "")
	var list []map[string]any
	for i := 0; i < 10; i++ {
		list = append(list, map[string]any{"card_type": "アイテム", "name": "Card"})
	}

	w := do(r, http.MethodPost, "/api/sheets?page=2", map[string]any{"cards": list})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-Sheet-Count"))

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	sw, sh := imagepkg.SheetSize()
	assert.Equal(t, sw, img.Bounds().Dx())
	assert.Equal(t, sh, img.Bounds().Dy())

	w = do(r, http.MethodPost, "/api/sheets?page=3", map[string]any{"cards": list})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/sheets", map[string]any{"paths": []string{"data/missing.json"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeckPrint(t *testing.T) {
	r, _ := newTestEngine(t, "")
	d := map[string]any{
		"boss": "data/lich.json",
		"deck": map[string]int{"data/knight.json": 3, "data/potion.json": 6, "data/unknown.json": 1},
	}

	w := do(r, http.MethodPost, "/api/deck/print", d)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-Sheet-Count"))
}

func TestDeckImage(t *testing.T) {
	r, _ := newTestEngine(t, "")
	d := map[string]any{"boss": "data/lich.json", "deck": map[string]int{"data/knight.json": 2}}

	w := do(r, http.MethodPost, "/api/deck/image", d)
	require.Equal(t, http.StatusOK, w.Code)
	_, err := png.Decode(w.Body)
	assert.NoError(t, err)
}

func TestDeckQR(t *testing.T) {
	r, _ := newTestEngine(t, "")
	w := do(r, http.MethodPost, "/api/deck/qr?size=200", map[string]any{"boss": nil, "deck": map[string]int{"data/knight.json": 2}})
	require.Equal(t, http.StatusOK, w.Code)

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQR(t *testing.T) {
	r, _ := newTestEngine(t, "")
	w := do(r, http.MethodGet, "/api/qr?text=hello&size=128", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = do(r, http.MethodGet, "/api/qr", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	r, store := newTestEngine(t, dir)

	c := cards.NewCard(cards.TypeItem)
	c.Name = "Shield"
	require.NoError(t, cards.SaveCard(filepath.Join(dir, "shield.json"), c))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	w := do(r, http.MethodPost, "/api/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())
	assert.Equal(t, 1, store.Load().Len())

	r, _ = newTestEngine(t, filepath.Join(dir, "missing"))
	w = do(r, http.MethodPost, "/api/reload", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
