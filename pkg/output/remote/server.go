// Package remote proxies an Output over net/rpc so a locker running on one
// machine can present frames on another (or into a recording sink).
package remote

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Xenfo/swaylock-effects-improved/pkg/output"
	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

// Proxy registers an RPC service backed by dev and serves it over srv for
// the lifetime of the fx application.
func Proxy(dev output.Output, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev output.Output
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	}

	return errors.New("unknown command")
}

func (s *Service) Present(req *PresentRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Frame))
	if err != nil {
		return err
	}

	return s.dev.Present(surface.FromImage(img))
}
