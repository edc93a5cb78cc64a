package main

import (
	"github.com/moviebase/core/internal/app"
	"github.com/moviebase/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
