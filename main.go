package main

import (
	"net/http"

	"github.com/madflojo/tasks"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/osamigbe/account-service/config"
	"github.com/osamigbe/account-service/db"
	"github.com/osamigbe/account-service/handlers"
	"github.com/osamigbe/account-service/services"
)

func main() {
	fx.New(
		fx.Provide(
			NewHttpServer,
			fx.Annotate(
				NewServeMux,
				fx.ParamTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewAccountHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewSystemHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			handlers.NewMiddlewareHandler,
			services.NewAccountService,
			services.NewStatsService,
			config.Load,
			db.GetDataDBConnection,
			tasks.New,
			zap.NewProduction,
		),
		fx.Invoke(
			db.Migrate,
			func(*http.Server) {},
			func(services.StatsService) {},
		),
	).Run()
}
