package api

import (
	"bytes"
	"image"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/deck"
	imagepkg "github.com/youruser/ucgdeck/internal/image"
	"github.com/youruser/ucgdeck/internal/logger"
	"github.com/youruser/ucgdeck/internal/render"
)

// Options configures a Handler.
type Options struct {
	Store    *cards.Store
	Renderer *render.Renderer
	Render   render.Config
	Workers  int
	DataDir  string
	Logger   logger.Logger
}

// Handler serves the card API over the current corpus snapshot.
type Handler struct {
	store    *cards.Store
	renderer *render.Renderer
	render   render.Config
	workers  int
	dataDir  string
	logger   logger.Logger
}

// NewHandler creates a Handler.
func NewHandler(opts Options) *Handler {
	return &Handler{
		store:    opts.Store,
		renderer: opts.Renderer,
		render:   opts.Render,
		workers:  opts.Workers,
		dataDir:  opts.DataDir,
		logger:   opts.Logger.WithComponent("api"),
	}
}

type cardItem struct {
	Path string     `json:"path"`
	Card cards.Card `json:"card"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": h.store.Load().Len()})
}

func (h *Handler) filter(c *gin.Context) {
	var opt cards.Criteria
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := h.store.Load().Query(opt)
	items := make([]cardItem, len(out))
	for i, card := range out {
		items[i] = cardItem{Path: card.Path, Card: card}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "cards": items})
}

// reload rebuilds the corpus from the data directory and swaps it in.
func (h *Handler) reload(c *gin.Context) {
	all, err := cards.LoadCardsFromDataDir(h.dataDir, h.logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.store.Replace(cards.NewCorpus(all))
	h.logger.Info("Reloaded %d cards", len(all))
	c.JSON(http.StatusOK, gin.H{"count": len(all)})
}

func (h *Handler) params(c *gin.Context) {
	vocab := cards.ScanParams(h.store.Load().Cards())
	c.JSON(http.StatusOK, gin.H{"params": vocab.List()})
}

// renderCard draws one card. Optional overrides apply to this request only.
func (h *Handler) renderCard(c *gin.Context) {
	var req struct {
		Card      map[string]any `json:"card"`
		Overrides render.Config  `json:"overrides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Card == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card is required"})
		return
	}
	// Clients cannot point the server at arbitrary font files.
	req.Overrides.FontPath = ""
	cfg := render.Merge(h.render, req.Overrides)
	h.writePNG(c, h.renderer.RenderCard(req.Card, cfg))
}

// sheets renders the posted cards, or the corpus cards at the given paths,
// and returns one print sheet.
func (h *Handler) sheets(c *gin.Context) {
	var req struct {
		Cards []map[string]any `json:"cards"`
		Paths []string         `json:"paths"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list := make([]cards.Card, 0, len(req.Cards)+len(req.Paths))
	for _, m := range req.Cards {
		list = append(list, cards.FromAccessor(cards.NewAccessor(m)))
	}
	list = append(list, h.lookup(req.Paths)...)
	h.writeSheet(c, list)
}

func (h *Handler) deckPrint(c *gin.Context) {
	d, ok := bindDeck(c)
	if !ok {
		return
	}
	h.writeSheet(c, h.lookup(d.PrintList()))
}

// deckImage composes the deck overview: boss, cards in deck view order and
// the share code QR.
func (h *Handler) deckImage(c *gin.Context) {
	d, ok := bindDeck(c)
	if !ok {
		return
	}
	corpus := h.store.Load()

	var boss image.Image
	if e, ok := d.BossEntry(corpus); ok && e.Known {
		boss = h.renderer.RenderCard(e.Card, h.render)
	}

	var list []cards.Card
	for _, e := range d.Entries(corpus) {
		if !e.Known {
			h.logger.Warn("Card not found: %s", e.Path)
			continue
		}
		for i := 0; i < e.Quantity; i++ {
			list = append(list, e.Card)
		}
	}
	imgs, err := h.renderer.RenderAll(c.Request.Context(), list, h.render, h.workers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var qr image.Image
	if text, err := deck.ShareText(d); err == nil {
		if qr, err = imagepkg.GenerateQRImage(text, imagepkg.DefaultQRSize); err != nil {
			h.logger.Warn("QR code skipped: %v", err)
		}
	}

	h.writePNG(c, imagepkg.ComposeDeckOverview(boss, imgs, qr))
}

func (h *Handler) deckQR(c *gin.Context) {
	d, ok := bindDeck(c)
	if !ok {
		return
	}
	text, err := deck.ShareText(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b, err := imagepkg.GenerateQRPNG(text, queryInt(c, "size", imagepkg.DefaultQRSize))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// qr endpoint returns a PNG of a QR for "text" query param
func (h *Handler) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	b, err := imagepkg.GenerateQRPNG(text, queryInt(c, "size", imagepkg.DefaultQRSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) lookup(paths []string) []cards.Card {
	corpus := h.store.Load()
	out := make([]cards.Card, 0, len(paths))
	for _, p := range paths {
		card, ok := corpus.Lookup(p)
		if !ok {
			h.logger.Warn("Card not found: %s", p)
			continue
		}
		out = append(out, card)
	}
	return out
}

// writeSheet renders list and responds with the sheet selected by the
// 1-based page query. The sheet count is sent in X-Sheet-Count.
func (h *Handler) writeSheet(c *gin.Context, list []cards.Card) {
	if len(list) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no cards to print"})
		return
	}
	imgs, err := h.renderer.RenderAll(c.Request.Context(), list, h.render, h.workers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sheets := imagepkg.ComposeSheets(imgs)

	page := queryInt(c, "page", 1)
	if page < 1 || page > len(sheets) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page out of range", "pages": len(sheets)})
		return
	}
	c.Header("X-Sheet-Count", strconv.Itoa(len(sheets)))
	h.writePNG(c, sheets[page-1])
}

func (h *Handler) writePNG(c *gin.Context, img image.Image) {
	buf := new(bytes.Buffer)
	if err := imagepkg.EncodePNG(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func bindDeck(c *gin.Context) (*deck.Deck, bool) {
	d := deck.New("")
	if err := c.ShouldBindJSON(d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return d, true
}

func queryInt(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return def
}
