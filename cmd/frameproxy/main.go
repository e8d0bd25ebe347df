package main

import (
	"net/http"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/output"
	"github.com/Xenfo/swaylock-effects-improved/pkg/output/remote"
)

var listen = flag.String("listen", ":9123", "listen addr")
var frameDir = flag.String("frame-dir", "", "write received frames as PNGs into this directory")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (output.Output, *http.Server, error) {
				logger, err := zap.NewProduction()
				if err != nil {
					return nil, nil, err
				}

				srv := &http.Server{Addr: *listen}
				if *frameDir == "" {
					return output.Mock(logger), srv, nil
				}

				fs := afero.NewBasePathFs(afero.NewOsFs(), *frameDir)
				return output.NewPNG(fs, logger), srv, nil
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
