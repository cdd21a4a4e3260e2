package main

import (
	"context"
	"log"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/cli"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
