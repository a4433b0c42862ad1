// Command simulator runs many concurrent users against one shared sheet and
// reports what they did.
//
//	simulator run --rows 20 --cols 20 --users 16 --ops 500 --sleep 2ms
//	simulator run --config sim.yaml --metrics-addr :9090
package main

import (
	"os"

	"github.com/katalvlaran/sharesheet/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.GetLogger().Error("simulator failed", "error", err)
		os.Exit(1)
	}
}
