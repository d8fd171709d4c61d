// Command automationworker executes automation actions delivered over Pub/Sub
// push, or by the local publisher in development.
package main

import (
	"context"

	"urjabandhu/config"
	"urjabandhu/internal/delivery"
	"urjabandhu/internal/delivery/worker"
	"urjabandhu/internal/delivery/worker/handler"
	"urjabandhu/internal/infra/devicecontrol"
	logs "urjabandhu/internal/infra/log"
	"urjabandhu/internal/infra/notification"
	"urjabandhu/internal/infra/persistence/postgres"
	"urjabandhu/internal/infra/pubsub"
	"urjabandhu/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(delivery.FxLogger),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		persistence(),
		automation(),
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(delivery.Start),
	).Run()
}

// persistence provides only the repositories reachable from action execution.
func persistence() fx.Option {
	return fx.Module("persistence",
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewProfileRepository,
			postgres.NewDeviceRepository,
			postgres.NewDeviceControlRepository,
			postgres.NewAutomationRuleRepository,
			postgres.NewDeviceScheduleRepository,
			postgres.NewAutomationLogRepository,
			postgres.NewNotificationRepository,
		),
	)
}

// automation wires the action executor. The publisher is unused here but the
// automation usecase requires one for rule triggers.
func automation() fx.Option {
	return fx.Module("automation",
		fx.Provide(
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			devicecontrol.NewDeviceCommander,
			impl.NewNotificationService,
			impl.NewAutomationService,
		),
	)
}
