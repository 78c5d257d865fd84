//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"backoffice/internal/gateway/courierapi"
	"backoffice/internal/handlers/rest/courier_credentials_put"
	"backoffice/internal/handlers/rest/courier_get"
	"backoffice/internal/handlers/rest/courier_import_post"
	"backoffice/internal/handlers/rest/courier_mode_put"
	"backoffice/internal/handlers/rest/courier_post"
	"backoffice/internal/handlers/rest/courier_put"
	"backoffice/internal/handlers/rest/couriers_get"
	"backoffice/internal/handlers/rest/dispatch_bulk_post"
	"backoffice/internal/handlers/rest/dispatch_post"
	"backoffice/internal/handlers/rest/order_audit_get"
	"backoffice/internal/handlers/rest/order_call_post"
	"backoffice/internal/handlers/rest/order_cancel_post"
	"backoffice/internal/handlers/rest/order_get"
	"backoffice/internal/handlers/rest/order_pay_post"
	"backoffice/internal/handlers/rest/order_status_post"
	"backoffice/internal/handlers/rest/orders_get"
	"backoffice/internal/handlers/rest/tracking_preview_get"
	"backoffice/internal/handlers/tasks/tracking_stock"
	"backoffice/internal/pkg/config"

	auditRepo "backoffice/internal/repository/auditlog"
	courierRepo "backoffice/internal/repository/courier"
	orderRepo "backoffice/internal/repository/order"
	paymentRepo "backoffice/internal/repository/payment"
	trackingRepo "backoffice/internal/repository/tracking"
	allocatorService "backoffice/internal/service/allocator"
	courierService "backoffice/internal/service/courier"
	dispatchService "backoffice/internal/service/dispatch"

	"backoffice/pkg/background"
	"backoffice/pkg/logger"
	"backoffice/pkg/querier"
	"backoffice/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceDispatch   ServiceDispatch
	ServiceCourier    ServiceCourier
	Allocator         TrackingAllocator
	AuditReader       AuditReader
	BackgroundWorkers *background.Worker
}

type ServiceDispatch interface {
	dispatch_post.Service
	dispatch_bulk_post.Service
	order_cancel_post.Service
	order_pay_post.Service
	order_call_post.Service
	order_status_post.Service
	order_get.Service
	orders_get.Service
}

type ServiceCourier interface {
	courier_get.Service
	couriers_get.Service
	courier_post.Service
	courier_put.Service
	courier_mode_put.Service
	courier_credentials_put.Service
	courier_import_post.Service
	tracking_preview_get.CourierProvider
}

type TrackingAllocator interface {
	tracking_preview_get.Service
}

type AuditReader interface {
	order_audit_get.AuditReader
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideTrackingRepository,
		provideOrderRepository,
		provideCourierRepository,
		providePaymentRepository,
		provideAuditRepository,

		provideCourierAPIGateway,
		provideAllocator,
		provideServiceCourier,
		provideServiceDispatch,

		provideTrackingStockTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDispatch), new(*dispatchService.Engine)),
		wire.Bind(new(ServiceCourier), new(*courierService.Registry)),
		wire.Bind(new(TrackingAllocator), new(*allocatorService.Allocator)),
		wire.Bind(new(AuditReader), new(*auditRepo.Repository)),

		wire.Bind(new(allocatorService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(allocatorService.ParcelAPI), new(*courierapi.Gateway)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.AuditLog), new(*auditRepo.Repository)),
		wire.Bind(new(courierService.ParcelImporter), new(*allocatorService.Allocator)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.PaymentRepository), new(*paymentRepo.Repository)),
		wire.Bind(new(dispatchService.AuditLog), new(*auditRepo.Repository)),
		wire.Bind(new(dispatchService.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(dispatchService.Allocator), new(*allocatorService.Allocator)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tracking_stock.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(tracking_stock.PoolCounter), new(*allocatorService.Allocator)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DispatchService *dispatchService.Engine
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideTrackingRepository,
		provideOrderRepository,
		provideCourierRepository,
		providePaymentRepository,
		provideAuditRepository,

		provideCourierAPIGateway,
		provideAllocator,
		provideServiceCourier,
		provideServiceDispatch,

		wire.Bind(new(allocatorService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(allocatorService.ParcelAPI), new(*courierapi.Gateway)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.AuditLog), new(*auditRepo.Repository)),
		wire.Bind(new(courierService.ParcelImporter), new(*allocatorService.Allocator)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.PaymentRepository), new(*paymentRepo.Repository)),
		wire.Bind(new(dispatchService.AuditLog), new(*auditRepo.Repository)),
		wire.Bind(new(dispatchService.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(dispatchService.Allocator), new(*allocatorService.Allocator)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

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

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideCourierAPIGateway(cfg *config.Config) *courierapi.Gateway {
	return courierapi.New(cfg.CourierAPI.BaseURL, cfg.CourierAPI.RequestTimeout)
}

func provideAllocator(
	tracking allocatorService.TrackingRepository,
	api allocatorService.ParcelAPI,
) *allocatorService.Allocator {
	return allocatorService.New(tracking, api)
}

func provideServiceCourier(
	repository courierService.Repository,
	audit courierService.AuditLog,
	importer courierService.ParcelImporter,
	txManager courierService.TxManager,
) *courierService.Registry {
	return courierService.New(repository, audit, importer, txManager)
}

func provideServiceDispatch(
	orders dispatchService.OrderRepository,
	payments dispatchService.PaymentRepository,
	audit dispatchService.AuditLog,
	registry dispatchService.CourierRegistry,
	allocator dispatchService.Allocator,
	txManager dispatchService.TxManager,
) *dispatchService.Engine {
	return dispatchService.New(orders, payments, audit, registry, allocator, txManager)
}

func provideTrackingStockTask(
	log logger.Logger,
	registry tracking_stock.CourierRegistry,
	pool tracking_stock.PoolCounter,
	cfg *config.Config,
) *tracking_stock.TrackingStock {
	return tracking_stock.NewTrackingStock(
		log,
		registry,
		pool,
		cfg.Tasks.TrackingStockInterval,
		cfg.Tasks.TrackingStockLowThreshold,
	)
}

func provideTaskList(
	trackingStockTask *tracking_stock.TrackingStock,
) []background.Task {
	return []background.Task{
		trackingStockTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
