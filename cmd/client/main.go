package main

import (
	"context"

	"github.com/dpetrovs/filebox/internal/client/cli"
	"github.com/dpetrovs/filebox/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
