// cmd/clok/main.go
package main

import (
	"fmt"
	"os"

	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/render/raylib"
)

func main() {
	newHost := func(log *logger.Logger) render.Host {
		return raylib.NewRaylibRenderer(log)
	}

	if err := newRootCmd(newHost).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
