package main

import (
	"context"
	"log/slog"
	"os"

	"dropzone/config"
	"dropzone/internal/delivery"
	"dropzone/internal/delivery/api"
	"dropzone/internal/delivery/api/router/handler"
	"dropzone/internal/domain/service"
	"dropzone/internal/infra/auth"
	"dropzone/internal/infra/clock"
	logs "dropzone/internal/infra/log"
	"dropzone/internal/infra/persistence/postgres"
	"dropzone/internal/infra/pubsub"
	"dropzone/internal/infra/qrcode"
	"dropzone/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clock.NewSystemClock,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDropPointRepository,
			postgres.NewCapacitySlotRepository,
			postgres.NewAssignmentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPickupPassService,
			newQRCodeService,
		),
	)
}

// newQRCodeService sizes pickup pass QR codes from config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.PickupPass.QRSize, cfg.PickupPass.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAssignmentService,
			impl.NewDropPointService,
			impl.NewPickupPassService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAssignmentHandler,
			handler.NewDropPointHandler,
			handler.NewPickupPassHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
