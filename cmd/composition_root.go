package cmd

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/kafkanotify"
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/mockpay"
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/postgres"
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/redistrack"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/queries"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers. It is the only
// place that knows concrete adapter types.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	tariff    services.Tariff
	cache     ports.TrackingCache
	publisher ports.EventPublisher
	gateway   ports.PaymentGateway
	sessions  *wizard.Sessions
}

// NewCompositionRoot builds the shared adapters once. The tracking cache
// and the event publisher degrade to no-ops when their backend is not
// configured.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	var cache ports.TrackingCache = redistrack.NewNoopCache()
	if configs.RedisAddr != "" {
		cache = redistrack.NewCache(redis.NewClient(&redis.Options{Addr: configs.RedisAddr}))
	}

	var publisher ports.EventPublisher = kafkanotify.NewNoopPublisher()
	if configs.KafkaHost != "" {
		publisher = kafkanotify.NewPublisher([]string{configs.KafkaHost}, configs.KafkaParcelEventsTopic)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tariff:     services.DefaultTariff(),
		cache:      cache,
		publisher:  publisher,
		gateway:    mockpay.NewGateway(configs.PaymentDelay),
		sessions:   wizard.NewSessions(configs.WizardTTL),
	}
}

// Sessions exposes the wizard session store for the cleanup job.
func (c *CompositionRoot) Sessions() *wizard.Sessions {
	return c.sessions
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.tariff, c.publisher)
}

func (c *CompositionRoot) CreateEditParcelCommandHandler() commands.EditParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditParcelCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelParcelCommandHandler(f, c.publisher, c.cache)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f, c.publisher, c.cache)
}

func (c *CompositionRoot) CreateUpdateParcelLocationCommandHandler() commands.UpdateParcelLocationCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelLocationCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelByIDQueryHandler() queries.GetParcelByIDQueryHandler {
	return queries.NewGetParcelByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB, c.cache, c.configs.TrackingCacheTTL)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

// CreateWizardService builds the parcel creation wizard backed by the
// payment gateway and the create parcel handler.
func (c *CompositionRoot) CreateWizardService() *wizard.Service {
	creator := c.CreateCreateParcelCommandHandler()
	return wizard.NewService(c.sessions, c.tariff, c.gateway, creator)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
