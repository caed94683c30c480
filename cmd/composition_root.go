package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpin "roadside/internal/adapters/in/http"
	"roadside/internal/adapters/out/devices"
	"roadside/internal/adapters/out/geocoding"
	"roadside/internal/adapters/out/messaging"
	"roadside/internal/adapters/out/postgres"
	"roadside/internal/adapters/out/push"
	"roadside/internal/core/application/eventhandlers"
	"roadside/internal/core/application/usecases/commands"
	"roadside/internal/core/application/usecases/queries"
	"roadside/internal/core/domain/services"
	"roadside/internal/core/ports"
	"roadside/internal/jobs"
	"roadside/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived adapters and builds handlers on demand.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	registry       *prometheus.Registry
	metrics        *metrics.Metrics
	redis          *redis.Client
	publisher      *messaging.LifecyclePublisher
	deviceRegistry ports.DeviceRegistry
	dispatcher     *eventhandlers.LifecycleDispatcher
	geocoder       ports.Geocoder
	policy         services.EscalationPolicy
}

func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := services.NewEscalationPolicy(cfg.SweepMaxAttempts)
	if err != nil {
		return nil, err
	}

	geocoder, err := newGeocoder(cfg)
	if err != nil {
		return nil, err
	}

	sender, err := push.NewFCMSender(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err = redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	publisher := messaging.NewLifecyclePublisher(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic)
	deviceRegistry := devices.NewRedisDeviceRegistry(redisClient, cfg.DeviceTokenTTL)

	return &CompositionRoot{
		cfg:            cfg,
		logger:         logger,
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:       registry,
		metrics:        m,
		redis:          redisClient,
		publisher:      publisher,
		deviceRegistry: deviceRegistry,
		dispatcher: eventhandlers.NewLifecycleDispatcher(
			publisher, sender, deviceRegistry, m, logger, cfg.NotificationTimeout,
		),
		geocoder: geocoder,
		policy:   policy,
	}, nil
}

func newGeocoder(cfg Config) (ports.Geocoder, error) {
	if cfg.MapsAPIKey == "" {
		return geocoding.LiteralGeocoder{}, nil
	}
	geocoder, err := geocoding.NewGoogleGeocoder(cfg.MapsAPIKey, cfg.MapsRegion, cfg.MapsLanguage)
	if err != nil {
		return nil, err
	}
	return geocoder, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geocoder, c.dispatcher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	return commands.NewAssignOperatorCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddExtraCostCommandHandler() commands.AddExtraCostCommandHandler {
	return commands.NewAddExtraCostCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateExtraCostCommandHandler() commands.UpdateExtraCostCommandHandler {
	return commands.NewUpdateExtraCostCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverDeviceCommandHandler() commands.RegisterDriverDeviceCommandHandler {
	return commands.NewRegisterDriverDeviceCommandHandler(c.deviceRegistry)
}

func (c *CompositionRoot) CreateSweepStaleAcceptancesCommandHandler() commands.SweepStaleAcceptancesCommandHandler {
	return commands.NewSweepStaleAcceptancesCommandHandler(c.orderUoWFactory(), c.policy, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires the API routes onto an http.Server listening on the
// configured port.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*http.Server, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		AssignOperator:        c.CreateAssignOperatorCommandHandler(),
		AddExtraCost:          c.CreateAddExtraCostCommandHandler(),
		UpdateExtraCost:       c.CreateUpdateExtraCostCommandHandler(),
		RegisterDriverDevice:  c.CreateRegisterDriverDeviceCommandHandler(),
		SweepStaleAcceptances: c.CreateSweepStaleAcceptancesCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetActiveOrders:       c.CreateGetActiveOrdersQueryHandler(),
	}, httpin.SweepSettings{
		Threshold: c.cfg.SweepThreshold,
		BatchSize: c.cfg.SweepBatchSize,
	}, c.logger)

	e, err := httpin.NewRouter(ctx, server, c.registry, c.logger)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", c.cfg.HTTPPort),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepStaleAcceptancesCommandHandler(), jobs.SweepSettings{
		Schedule:  c.cfg.SweepSchedule,
		Threshold: c.cfg.SweepThreshold,
		BatchSize: c.cfg.SweepBatchSize,
	}, c.metrics, c.logger)
}

// Close waits for pending lifecycle deliveries, then releases the adapters.
func (c *CompositionRoot) Close() error {
	c.dispatcher.Wait()
	return errors.Join(c.publisher.Close(), c.redis.Close())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
