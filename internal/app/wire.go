//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	artifactGateway "freight/internal/gateway/artifact"
	notificationGateway "freight/internal/gateway/kafka/notification"
	container_aggregates_get "freight/internal/handlers/rest/container_aggregates_get"
	container_docs_delete "freight/internal/handlers/rest/container_docs_delete"
	container_docs_put "freight/internal/handlers/rest/container_docs_put"
	container_manifest_delete "freight/internal/handlers/rest/container_manifest_delete"
	container_manifest_put "freight/internal/handlers/rest/container_manifest_put"
	container_slots_get "freight/internal/handlers/rest/container_slots_get"
	container_state_get "freight/internal/handlers/rest/container_state_get"
	delivery_date_delete "freight/internal/handlers/rest/delivery_date_delete"
	delivery_date_post "freight/internal/handlers/rest/delivery_date_post"
	delivery_range_delete "freight/internal/handlers/rest/delivery_range_delete"
	delivery_range_post "freight/internal/handlers/rest/delivery_range_post"
	delivery_range_put "freight/internal/handlers/rest/delivery_range_put"
	quotation_aggregates_get "freight/internal/handlers/rest/quotation_aggregates_get"
	quotation_confirm_delete "freight/internal/handlers/rest/quotation_confirm_delete"
	quotation_confirm_post "freight/internal/handlers/rest/quotation_confirm_post"
	shipment_post "freight/internal/handlers/rest/shipment_post"
	shipment_quantities_post "freight/internal/handlers/rest/shipment_quantities_post"
	shipment_status_post "freight/internal/handlers/rest/shipment_status_post"
	shipment_tracking_get "freight/internal/handlers/rest/shipment_tracking_get"
	slot_assign_post "freight/internal/handlers/rest/slot_assign_post"
	slot_unassign_post "freight/internal/handlers/rest/slot_unassign_post"
	"freight/internal/handlers/tasks/aggregates_audit"
	"freight/internal/pkg/config"
	"freight/internal/pkg/factory/status_handle"

	aggregationRepo "freight/internal/repository/aggregation"
	containerRepo "freight/internal/repository/container"
	quotationRepo "freight/internal/repository/quotation"
	scheduleRepo "freight/internal/repository/schedule"
	shipmentRepo "freight/internal/repository/shipment"
	trackingRepo "freight/internal/repository/tracking"
	aggregationService "freight/internal/service/aggregation"
	completionService "freight/internal/service/completion"
	quotationService "freight/internal/service/quotation"
	scheduleService "freight/internal/service/schedule"
	workflowService "freight/internal/service/workflow"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	AuditInterval time.Duration
)

type Application struct {
	ServiceWorkflow    ServiceWorkflow
	ServiceQuotation   ServiceQuotation
	ServiceAggregation ServiceAggregation
	ServiceCompletion  ServiceCompletion
	ServiceSchedule    ServiceSchedule
	BackgroundWorkers  *background.Worker
}

type ServiceWorkflow interface {
	shipment_post.Service
	shipment_status_post.Service
	shipment_quantities_post.Service
	shipment_tracking_get.Service
}

type ServiceQuotation interface {
	quotation_confirm_post.Service
	quotation_confirm_delete.Service
}

type ServiceAggregation interface {
	quotation_aggregates_get.Service
	container_aggregates_get.Service
}

type ServiceCompletion interface {
	container_state_get.Service
	container_manifest_put.Service
	container_manifest_delete.Service
	container_docs_put.Service
	container_docs_delete.Service
}

type ServiceSchedule interface {
	container_slots_get.Service
	delivery_date_post.Service
	delivery_date_delete.Service
	delivery_range_post.Service
	delivery_range_put.Service
	delivery_range_delete.Service
	slot_assign_post.Service
	slot_unassign_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAuditInterval,
		provideClock,

		provideShipmentRepository,
		provideTrackingRepository,
		provideQuotationRepository,
		provideAggregationRepository,
		provideContainerRepository,
		provideScheduleRepository,

		provideNotificationGateway,
		provideArtifactStore,

		provideServiceAggregation,
		provideServiceCompletion,
		provideServiceWorkflow,
		provideServiceQuotation,
		provideServiceSchedule,

		provideAggregatesAuditTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceWorkflow), new(*workflowService.Service)),
		wire.Bind(new(ServiceQuotation), new(*quotationService.Service)),
		wire.Bind(new(ServiceAggregation), new(*aggregationService.Engine)),
		wire.Bind(new(ServiceCompletion), new(*completionService.Evaluator)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Scheduler)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *status_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,

		provideShipmentRepository,
		provideTrackingRepository,
		provideQuotationRepository,
		provideAggregationRepository,
		provideContainerRepository,

		provideNotificationGateway,
		provideArtifactStore,

		provideServiceAggregation,
		provideServiceCompletion,
		provideServiceWorkflow,
		provideStatusHandlerFactory,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideQuotationRepository(querier *querier.Querier) *quotationRepo.Repository {
	return quotationRepo.New(querier)
}

func provideAggregationRepository(querier *querier.Querier) *aggregationRepo.Repository {
	return aggregationRepo.New(querier)
}

func provideContainerRepository(querier *querier.Querier) *containerRepo.Repository {
	return containerRepo.New(querier)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideNotificationGateway(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.Gateway {
	return notificationGateway.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideArtifactStore(cfg *config.Config) *artifactGateway.Store {
	return artifactGateway.New(cfg.Artifact.BaseURL)
}

// systemClock - настенные часы для production-сборки; в тестах подменяются.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func provideClock() workflowService.Clock {
	return systemClock{}
}

func provideServiceAggregation(repository *aggregationRepo.Repository) *aggregationService.Engine {
	return aggregationService.New(repository)
}

func provideServiceCompletion(
	log logger.Logger,
	repository *containerRepo.Repository,
	artifacts *artifactGateway.Store,
	txManager *tx.Manager,
) *completionService.Evaluator {
	return completionService.New(log, repository, artifacts, txManager)
}

func provideServiceWorkflow(
	log logger.Logger,
	repository *shipmentRepo.Repository,
	ledger *trackingRepo.Repository,
	quotations *quotationRepo.Repository,
	aggregation *aggregationService.Engine,
	completion *completionService.Evaluator,
	notifier *notificationGateway.Gateway,
	clock workflowService.Clock,
	txManager *tx.Manager,
) *workflowService.Service {
	return workflowService.New(
		log,
		repository,
		ledger,
		quotations,
		aggregation,
		completion,
		notifier,
		clock,
		txManager,
	)
}

func provideServiceQuotation(
	repository *quotationRepo.Repository,
	aggregation *aggregationService.Engine,
	txManager *tx.Manager,
) *quotationService.Service {
	return quotationService.New(repository, aggregation, txManager)
}

func provideServiceSchedule(repository *scheduleRepo.Repository, txManager *tx.Manager) *scheduleService.Scheduler {
	return scheduleService.New(repository, txManager)
}

func provideStatusHandlerFactory(workflowService *workflowService.Service) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(workflowService)
}

func provideAuditInterval(cfg *config.Config) AuditInterval {
	return AuditInterval(cfg.Tasks.AggregatesAuditInterval)
}

func provideAggregatesAuditTask(
	log logger.Logger,
	aggregation *aggregationService.Engine,
	interval AuditInterval,
) *aggregates_audit.AggregatesAudit {
	return aggregates_audit.NewAggregatesAudit(log, aggregation, time.Duration(interval))
}

func provideTaskList(
	aggregatesAuditTask *aggregates_audit.AggregatesAudit,
) []background.Task {
	return []background.Task{
		aggregatesAuditTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
