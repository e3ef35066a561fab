package main

import (
	"github.com/feastline/storefront/internal/app"
	"github.com/feastline/storefront/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
