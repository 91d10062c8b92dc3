package main

import (
	"go.uber.org/fx"

	"esportsbot/app"
	"esportsbot/bots"
)

func main() {
	fx.New(
		app.Module,
		fx.Provide(bots.PandaScore),
		fx.Invoke(app.Run),
	).Run()
}
