// Package output abstracts where rendered lock-screen frames go.
package output

import "github.com/Xenfo/swaylock-effects-improved/pkg/surface"

// Output consumes rendered frames. Present takes ownership of the frame;
// the caller must not reuse it afterwards.
type Output interface {
	Startup() error
	Shutdown() error
	Present(frame *surface.Surface) error
}
