package background

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/moolex/wallhaven-go/api"
	"github.com/moolex/wallhaven-go/utils"
	"go.uber.org/zap"
)

func NewWallhaven(apiKey, query string, logger *zap.Logger) *Wallhaven {
	if logger == nil {
		logger = zap.NewNop()
	}

	wh := api.New(apiKey)
	wh.SetLogger(logger)

	q := api.NewQuery(query)
	q.Random()

	return &Wallhaven{api: wh, query: q, log: logger}
}

// Wallhaven picks random wallhaven.cc wallpapers as lock-screen backgrounds.
type Wallhaven struct {
	mu     sync.Mutex
	api    *api.API
	query  *api.QueryCond
	result *api.QueryResult
	log    *zap.Logger
}

// Next fetches the next wallpaper, pre-filled to the given screen size.
func (w *Wallhaven) Next(width, height int) (image.Image, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.result == nil {
		ret, err := w.api.Query(w.query)
		if err != nil {
			return nil, fmt.Errorf("wallhaven query failed: %w", err)
		}
		w.result = ret
	}

	wp, err := w.result.Pick(api.PickLoop, api.PickRand)
	if err != nil {
		if errors.Is(err, api.ErrNoMoreItems) {
			w.query.Page = 1
			w.result = nil
		}
		return nil, fmt.Errorf("get wallpaper failed: %w", err)
	}

	w.log.With(zap.String("url", wp.Url)).Debug("picked wallpaper")

	img, err := utils.GetThumbImage(wp, api.ThumbOriginal)
	if err != nil {
		return nil, fmt.Errorf("get thumb image failed: %w", err)
	}

	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos), nil
}
