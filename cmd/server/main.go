package main

import (
	"context"
	"log"

	"github.com/krishnapriya5647/smart-asset-system/internal/server"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
