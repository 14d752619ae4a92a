package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/youruser/ucgdeck/internal/render"
)

// Print sheet grid.
const (
	SheetColumns  = 3
	SheetRows     = 3
	SheetMargin   = 10
	CardsPerSheet = SheetColumns * SheetRows
)

// SheetBackground fills the margins and empty cells of a sheet.
var SheetBackground = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// SheetSize returns the pixel size of one print sheet.
func SheetSize() (width, height int) {
	width = SheetColumns*render.CardWidth + (SheetColumns+1)*SheetMargin
	height = SheetRows*render.CardHeight + (SheetRows+1)*SheetMargin
	return width, height
}

// ComposeSheets lays card images out on 3x3 print sheets in row-major order.
// Every image is resized to the card size first. The last sheet may be
// partially filled. A nil image leaves its cell blank, so cell positions
// always follow the input order.
func ComposeSheets(images []image.Image) []image.Image {
	var sheets []image.Image
	for start := 0; start < len(images); start += CardsPerSheet {
		end := min(start+CardsPerSheet, len(images))
		sheets = append(sheets, composeSheet(images[start:end]))
	}
	return sheets
}

func composeSheet(cards []image.Image) *image.NRGBA {
	w, h := SheetSize()
	canvas := imaging.New(w, h, SheetBackground)
	for i, img := range cards {
		if img == nil {
			continue
		}
		col, row := i%SheetColumns, i/SheetColumns
		x := col*render.CardWidth + (col+1)*SheetMargin
		y := row*render.CardHeight + (row+1)*SheetMargin
		card := imaging.Resize(img, render.CardWidth, render.CardHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, card, image.Pt(x, y))
	}
	return canvas
}

// SheetFileNames returns output names for pages sheets: base.png for a
// single sheet, base(1).png, base(2).png ... otherwise.
func SheetFileNames(base string, pages int) []string {
	if pages <= 0 {
		return nil
	}
	if pages == 1 {
		return []string{base + ".png"}
	}
	names := make([]string, pages)
	for i := range names {
		names[i] = fmt.Sprintf("%s(%d).png", base, i+1)
	}
	return names
}

// Deck overview layout.
const (
	overviewMargin  = 48
	overviewGap     = 8
	overviewColumns = 9
	overviewBossW   = render.CardWidth * 2
	overviewBossH   = render.CardHeight * 2
	overviewQRSize  = 400
)

var overviewBackground = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

// ComposeDeckOverview draws a single image showing the boss at double size
// in the top left, the share QR code in the top right and every card of the
// deck below in rows. boss and qr may be nil.
func ComposeDeckOverview(boss image.Image, cards []image.Image, qr image.Image) image.Image {
	const width = 2*overviewMargin + overviewColumns*render.CardWidth + (overviewColumns-1)*overviewGap
	rows := (len(cards) + overviewColumns - 1) / overviewColumns
	top := overviewMargin + overviewBossH + overviewMargin
	height := top + rows*(render.CardHeight+overviewGap) + overviewMargin

	canvas := imaging.New(width, height, overviewBackground)

	if boss != nil {
		b := imaging.Resize(boss, overviewBossW, overviewBossH, imaging.Lanczos)
		canvas = imaging.Paste(canvas, b, image.Pt(overviewMargin, overviewMargin))
	}

	if qr != nil {
		q := imaging.Resize(qr, overviewQRSize, overviewQRSize, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(width-overviewMargin-overviewQRSize, overviewMargin))
	}

	for i, img := range cards {
		col, row := i%overviewColumns, i/overviewColumns
		x := overviewMargin + col*(render.CardWidth+overviewGap)
		y := top + row*(render.CardHeight+overviewGap)
		c := imaging.Resize(img, render.CardWidth, render.CardHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, c, image.Pt(x, y))
	}

	return canvas
}
