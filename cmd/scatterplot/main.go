// Command scatterplot draws a noisy linear data set.
//
// Without flags it reproduces
//     np.random.seed(42)
//     X = 2 * np.random.rand(100, 1)
//     y = 4 + 3 * X + np.random.rand(100, 1)
//     plt.scatter(X, y); plt.grid(); plt.show()
// and blocks until the viewer window is closed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vdobler/scatterplot/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(nil)
	if err := root.ExecuteContext(ctx); err != nil {
		logging.Get(logging.ModuleCLI).Error(err)
		stop()
		os.Exit(1)
	}
}
