package main

import (
	"bytes"
	"image"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/background"
	"github.com/Xenfo/swaylock-effects-improved/pkg/capture"
	"github.com/Xenfo/swaylock-effects-improved/pkg/effects"
	"github.com/Xenfo/swaylock-effects-improved/pkg/locker"
	"github.com/Xenfo/swaylock-effects-improved/pkg/output"
	"github.com/Xenfo/swaylock-effects-improved/pkg/output/remote"
	"github.com/Xenfo/swaylock-effects-improved/pkg/pixel"
)

var width = flag.Int("width", 1920, "screen width")
var height = flag.Int("height", 1080, "screen height")
var transform = flag.Uint32("transform", 0, "output transform (wl_output_transform value)")
var scaling = flag.String("scaling", "fill", "background mode: stretch|fill|fit|center|tile|solid_color")
var colorHex = flag.String("color", "000000", "solid background color (RRGGBB[AA])")
var alpha = flag.Float64("alpha", 1.0, "background alpha")
var imagePath = flag.String("image", "", "background image path or URL")
var cacheDir = flag.String("cache-dir", "", "download cache directory")
var blurSigma = flag.Float64("effect-blur", 0, "blur sigma applied to the background")
var pixelate = flag.Int("effect-pixelate", 0, "pixelate block size applied to the background")
var grayscale = flag.Bool("effect-greyscale", false, "grayscale the background")
var interval = flag.String("interval", "1s", "redraw interval")
var present = flag.String("present", "mock", "frame sink: mock, or a frameproxy addr (host:port)")
var debug = flag.Bool("debug", false, "set debug")
var whKey = flag.String("wh-key", "", "wallhaven api key")
var whQuery = flag.String("wh-query", "", "wallhaven query for random backgrounds")

func main() {
	flag.Parse()

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}

	params := locker.NewParams()
	if d, err := time.ParseDuration(*interval); err != nil {
		log.Fatal(err)
	} else {
		params.RedrawWait = d
	}

	mode := background.ParseMode(*scaling, logger)
	if mode == background.ModeInvalid {
		log.Fatalf("invalid background mode %q", *scaling)
	}

	solid, err := background.ParseColor(*colorHex)
	if err != nil {
		log.Fatal(err)
	}

	var out output.Output
	var outErr error

	if strings.Contains(*present, ":") {
		out, outErr = remote.New(*present)
	} else {
		out = output.Mock(logger)
	}
	if outErr != nil {
		log.Fatal(outErr)
	}

	if err := out.Startup(); err != nil {
		log.Fatal(err)
	}

	opts := []locker.Option{
		locker.WithMode(mode, *alpha),
	}

	var effs []effects.Effect
	if *pixelate > 1 {
		effs = append(effs, effects.Pixelate(*pixelate))
	}
	if *blurSigma > 0 {
		effs = append(effs, effects.Blur(*blurSigma))
	}
	if *grayscale {
		effs = append(effs, effects.Grayscale())
	}
	if len(effs) > 0 {
		opts = append(opts, locker.WithEffects(effs...))
	}

	if bg := loadBackground(logger); bg != nil {
		opts = append(opts, locker.WithBackground(bg))
	}

	src := capture.NewVirtual(*width, *height, pixel.XRGB8888, pixel.Transform(*transform), logger)
	renderer := background.NewRenderer(logger, background.WithColor(solid))

	l := locker.New(src, out, renderer, params, logger, opts...)

	shutdown := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		l.Run(shutdown)
		exited <- struct{}{}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	<-signals
	logger.Info("shutting down")
	close(shutdown)
	<-exited
	logger.Info("exited")
}

func loadBackground(logger *zap.Logger) image.Image {
	if *whQuery != "" {
		wh := background.NewWallhaven(*whKey, *whQuery, logger)
		img, err := wh.Next(*width, *height)
		if err != nil {
			log.Fatal(err)
		}
		return img
	}

	if *imagePath == "" {
		return nil
	}

	if strings.HasPrefix(*imagePath, "http://") || strings.HasPrefix(*imagePath, "https://") {
		dl, err := background.NewDownloader(*cacheDir, logger)
		if err != nil {
			log.Fatal(err)
		}
		bs, err := dl.Get(*imagePath)
		if err != nil {
			log.Fatal(err)
		}
		img, _, err := image.Decode(bytes.NewReader(bs))
		if err != nil {
			log.Fatal(err)
		}
		return img
	}

	s, err := background.NewLoader(nil, logger).Load(*imagePath)
	if err != nil {
		log.Fatal(err)
	}
	return s
}
