//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"afyalinks/internal/gateway/africastalking"
	"afyalinks/internal/gateway/kafka/orderevents"
	"afyalinks/internal/handlers/rest/clinic_profile_post"
	"afyalinks/internal/handlers/rest/driver_profile_put"
	"afyalinks/internal/handlers/rest/invoice_proof_post"
	"afyalinks/internal/handlers/rest/invoice_verify_post"
	"afyalinks/internal/handlers/rest/invoices_get"
	"afyalinks/internal/handlers/rest/notification_post"
	"afyalinks/internal/handlers/rest/order_confirm_post"
	"afyalinks/internal/handlers/rest/order_post"
	"afyalinks/internal/handlers/rest/order_respond_post"
	"afyalinks/internal/handlers/rest/orders_get"
	"afyalinks/internal/handlers/rest/otp_request_post"
	"afyalinks/internal/handlers/rest/otp_verify_post"
	"afyalinks/internal/handlers/rest/pharmacy_profile_post"
	"afyalinks/internal/handlers/rest/user_approve_post"
	"afyalinks/internal/handlers/rest/user_driver_profile_put"
	"afyalinks/internal/handlers/rest/user_post"
	"afyalinks/internal/handlers/rest/users_get"
	"afyalinks/internal/handlers/rest/ussd_post"
	"afyalinks/internal/handlers/tasks/invoice_overdue"
	"afyalinks/internal/pkg/config"
	"afyalinks/internal/pkg/factory/driver_availability"
	"afyalinks/internal/pkg/factory/order_event_handle"
	"afyalinks/internal/pkg/token"

	deliveryRepo "afyalinks/internal/repository/delivery"
	invoiceRepo "afyalinks/internal/repository/invoice"
	orderRepo "afyalinks/internal/repository/order"
	otpRepo "afyalinks/internal/repository/otp"
	userRepo "afyalinks/internal/repository/user"
	assignmentService "afyalinks/internal/service/assignment"
	authService "afyalinks/internal/service/auth"
	confirmationService "afyalinks/internal/service/confirmation"
	invoiceService "afyalinks/internal/service/invoice"
	notificationService "afyalinks/internal/service/notification"
	orderService "afyalinks/internal/service/order"
	userService "afyalinks/internal/service/user"
	ussdService "afyalinks/internal/service/ussd"

	"afyalinks/pkg/background"
	"afyalinks/pkg/logger"
	"afyalinks/pkg/querier"
	"afyalinks/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	OverdueInterval time.Duration
)

type Application struct {
	ServiceAuth         ServiceAuth
	ServiceOrder        ServiceOrder
	ServiceConfirmation ServiceConfirmation
	ServiceUSSD         ServiceUSSD
	ServiceInvoice      ServiceInvoice
	ServiceUser         ServiceUser
	ServiceNotification ServiceNotification
	TokenManager        *token.Manager
	BackgroundWorkers   *background.Worker
}

type ServiceAuth interface {
	otp_request_post.Service
	otp_verify_post.Service
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_respond_post.Service
}

type ServiceConfirmation interface {
	order_confirm_post.Service
}

type ServiceUSSD interface {
	ussd_post.Service
}

type ServiceInvoice interface {
	invoices_get.Service
	invoice_proof_post.Service
	invoice_verify_post.Service
}

type ServiceUser interface {
	users_get.Service
	user_post.Service
	user_approve_post.Service
	driver_profile_put.Service
	user_driver_profile_put.Service
	clinic_profile_post.Service
	pharmacy_profile_post.Service
}

type ServiceNotification interface {
	notification_post.Service
}

// InitializeApplication builds the HTTP service graph (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueInterval,
		provideGatewayConfig,
		provideTokenManager,

		provideOrderRepository,
		provideDeliveryRepository,
		provideUserRepository,
		provideInvoiceRepository,
		provideOTPStore,

		provideSMSGateway,
		provideAirtimeGateway,
		provideOrderEventsGateway,

		provideServiceAuth,
		provideServiceOrder,
		provideServiceConfirmation,
		provideServiceUSSD,
		provideServiceInvoice,
		provideServiceUser,
		provideServiceNotification,

		provideInvoiceOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceConfirmation), new(*confirmationService.Confirmation)),
		wire.Bind(new(ServiceUSSD), new(*ussdService.USSD)),
		wire.Bind(new(ServiceInvoice), new(*invoiceService.Invoice)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Gateway)),
		wire.Bind(new(confirmationService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(confirmationService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(confirmationService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(confirmationService.Rewarder), new(*africastalking.AirtimeGateway)),
		wire.Bind(new(invoiceService.Repository), new(*invoiceRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(authService.OTPStore), new(*otpRepo.Store)),
		wire.Bind(new(authService.Notifier), new(*africastalking.SMSGateway)),
		wire.Bind(new(authService.TokenIssuer), new(*token.Manager)),
		wire.Bind(new(notificationService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(notificationService.Notifier), new(*africastalking.SMSGateway)),
		wire.Bind(new(ussdService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(ussdService.ConfirmationService), new(*confirmationService.Confirmation)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(confirmationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(invoiceService.TxManager), new(*tx.Manager)),

		wire.Bind(new(invoice_overdue.Service), new(*invoiceService.Invoice)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *order_event_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp builds the assignment worker graph (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideGatewayConfig,

		provideOrderRepository,
		provideDeliveryRepository,
		provideUserRepository,

		provideSMSGateway,
		driver_availability.New,

		provideServiceAssignment,
		provideStatusHandlerFactory,

		wire.Bind(new(assignmentService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(assignmentService.Notifier), new(*africastalking.SMSGateway)),
		wire.Bind(new(assignmentService.AvailabilityPolicy), new(*driver_availability.AvailabilityPolicy)),
		wire.Bind(new(order_event_handle.AssignmentService), new(*assignmentService.Assignment)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

type InvoicerApp struct {
	ServiceInvoice *invoiceService.Invoice
}

// InitializeInvoicerApp builds the invoicing scheduler graph (cmd/invoicer)
func InitializeInvoicerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*InvoicerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideInvoiceRepository,
		provideServiceInvoice,

		wire.Bind(new(invoiceService.Repository), new(*invoiceRepo.Repository)),
		wire.Bind(new(invoiceService.TxManager), new(*tx.Manager)),

		wire.Struct(new(InvoicerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideInvoiceRepository(querier *querier.Querier) *invoiceRepo.Repository {
	return invoiceRepo.New(querier)
}

func provideOTPStore(client *redis.Client) *otpRepo.Store {
	return otpRepo.New(client)
}

func provideGatewayConfig(cfg *config.Config) africastalking.Config {
	return africastalking.Config{
		APIKey:   cfg.AfricasTalking.APIKey,
		Username: cfg.AfricasTalking.Username,
	}
}

func provideSMSGateway(cfg africastalking.Config, log logger.Logger) *africastalking.SMSGateway {
	return africastalking.NewSMSGateway(cfg, nil, log)
}

func provideAirtimeGateway(cfg africastalking.Config, log logger.Logger) *africastalking.AirtimeGateway {
	return africastalking.NewAirtimeGateway(cfg, nil, log)
}

func provideOrderEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *orderevents.Gateway {
	return orderevents.New(producer, cfg.Kafka.Topic)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
}

func provideServiceAuth(
	users authService.UserRepository,
	otpStore authService.OTPStore,
	notifier authService.Notifier,
	tokens authService.TokenIssuer,
	log logger.Logger,
) *authService.Auth {
	return authService.New(users, otpStore, notifier, tokens, log)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(log, repository, publisher, txManager)
}

func provideServiceConfirmation(
	log logger.Logger,
	orders confirmationService.OrderRepository,
	deliveries confirmationService.DeliveryRepository,
	users confirmationService.UserRepository,
	rewarder confirmationService.Rewarder,
	txManager confirmationService.TxManager,
) *confirmationService.Confirmation {
	return confirmationService.New(log, orders, deliveries, users, rewarder, txManager)
}

func provideServiceUSSD(
	log logger.Logger,
	users ussdService.UserRepository,
	confirmations ussdService.ConfirmationService,
) *ussdService.USSD {
	return ussdService.New(log, users, confirmations)
}

func provideServiceInvoice(
	log logger.Logger,
	repository invoiceService.Repository,
	txManager invoiceService.TxManager,
) *invoiceService.Invoice {
	return invoiceService.New(log, repository, txManager)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceNotification(
	log logger.Logger,
	users notificationService.UserRepository,
	notifier notificationService.Notifier,
) *notificationService.Notification {
	return notificationService.New(log, users, notifier)
}

func provideServiceAssignment(
	log logger.Logger,
	deliveries assignmentService.DeliveryRepository,
	orders assignmentService.OrderRepository,
	users assignmentService.UserRepository,
	notifier assignmentService.Notifier,
	availability assignmentService.AvailabilityPolicy,
) *assignmentService.Assignment {
	return assignmentService.New(log, deliveries, orders, users, notifier, availability)
}

func provideStatusHandlerFactory(assignment order_event_handle.AssignmentService) *order_event_handle.StatusHandlerFactory {
	return order_event_handle.NewStatusHandlerFactory(assignment)
}

func provideOverdueInterval(cfg *config.Config) OverdueInterval {
	return OverdueInterval(cfg.Tasks.InvoiceOverdueCheckInterval)
}

func provideInvoiceOverdueTask(
	log logger.Logger,
	invoiceService invoice_overdue.Service,
	interval OverdueInterval,
) *invoice_overdue.InvoiceOverdue {
	return invoice_overdue.NewInvoiceOverdue(log, invoiceService, time.Duration(interval))
}

func provideTaskList(
	invoiceOverdueTask *invoice_overdue.InvoiceOverdue,
) []background.Task {
	return []background.Task{
		invoiceOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
