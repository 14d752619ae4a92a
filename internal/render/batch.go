package render

import (
	"context"
	"image"
	"runtime"
	"sort"
	"sync"

	"github.com/youruser/ucgdeck/internal/cards"
)

type indexedImage struct {
	index int
	img   image.Image
}

// RenderAll renders cs with a pool of workers and returns the images in the
// order of cs. workers <= 0 uses one worker per CPU.
func (r *Renderer) RenderAll(ctx context.Context, cs []cards.Card, cfg Config, workers int) ([]image.Image, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(cs) {
		workers = len(cs)
	}
	r.logger.Debug("Rendering %d cards with %d workers", len(cs), workers)

	jobs := make(chan int, len(cs))
	results := make(chan indexedImage, len(cs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go r.worker(ctx, &wg, cs, cfg, jobs, results)
	}

	for i := range cs {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	rendered := make([]indexedImage, 0, len(cs))
	for res := range results {
		rendered = append(rendered, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(rendered, func(i, j int) bool {
		return rendered[i].index < rendered[j].index
	})
	out := make([]image.Image, len(rendered))
	for i, res := range rendered {
		out[i] = res.img
	}
	return out, nil
}

func (r *Renderer) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	cs []cards.Card,
	cfg Config,
	jobs <-chan int,
	results chan<- indexedImage,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}
		results <- indexedImage{index: idx, img: r.RenderCard(cs[idx], cfg)}
	}
}
