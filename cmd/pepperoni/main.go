package main

import (
	"context"
	"log/slog"
	"os"

	"pepperoni/config"
	"pepperoni/internal/delivery"
	"pepperoni/internal/delivery/http"
	"pepperoni/internal/delivery/http/middleware"
	"pepperoni/internal/delivery/http/router/handler"
	logs "pepperoni/internal/infra/log"
	"pepperoni/internal/infra/persistence/mysql"
	"pepperoni/internal/infra/qrcode"
	"pepperoni/internal/infra/upload"
	"pepperoni/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mysql.New,
		upload.New,
		newCardEncoder,
	)
}

// newCardEncoder creates the membership card QR encoder from config.
func newCardEncoder(cfg *config.Config) qrcode.CardEncoder {
	size := cfg.Loyalty.QRSize
	if size <= 0 {
		size = 256
	}

	return qrcode.NewCardEncoder(size, "M")
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mysql.NewUserRepository,
			mysql.NewProductRepository,
			mysql.NewCatalogRepository,
			mysql.NewCartRepository,
			mysql.NewOrderRepository,
			mysql.NewLoyaltyRepository,
			mysql.NewRedeemableRepository,
			mysql.NewCouponRepository,
			mysql.NewReviewRepository,
			mysql.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewLoyaltyService,
			impl.NewCouponService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewTimeoutMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewLoyaltyHandler,
			handler.NewCouponHandler,
			handler.NewReviewHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
