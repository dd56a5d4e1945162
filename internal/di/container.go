package di

import (
	"github.com/nurikhwanidris/urusmasjid/internal/handler"
	"github.com/nurikhwanidris/urusmasjid/internal/repository"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/config"
	"github.com/nurikhwanidris/urusmasjid/pkg/database"
	"github.com/redis/go-redis/v9"
)

// Container holds all dependencies of the application
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo         repository.UserRepository
	MosqueRepo       repository.MosqueRepository
	CommitteeRepo    repository.CommitteeRepository
	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	MemberRepo       repository.MemberRepository
	DonationRepo     repository.DonationRepository
	AnnouncementRepo repository.AnnouncementRepository

	// Services
	AuthService         service.AuthService
	MosqueService       service.MosqueService
	EventService        service.EventService
	RegistrationService service.RegistrationService
	MemberService       service.MemberService
	DonationService     service.DonationService
	AnnouncementService service.AnnouncementService
	PrayerService       service.PrayerService

	// Handlers
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	MosqueHandler       *handler.MosqueHandler
	EventHandler        *handler.EventHandler
	RegistrationHandler *handler.RegistrationHandler
	MemberHandler       *handler.MemberHandler
	DonationHandler     *handler.DonationHandler
	AnnouncementHandler *handler.AnnouncementHandler
	PrayerHandler       *handler.PrayerHandler
	PublicHandler       *handler.PublicHandler
}

// NewContainer wires repositories, services and handlers together
func NewContainer(cfg *config.Config, db *database.PostgresDB, redisClient *redis.Client) *Container {
	c := &Container{
		DB:    db,
		Redis: redisClient,
	}

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(db.Pool)
	c.MosqueRepo = repository.NewPostgresMosqueRepository(db.Pool)
	c.CommitteeRepo = repository.NewPostgresCommitteeRepository(db.Pool)
	c.EventRepo = repository.NewPostgresEventRepository(db.Pool)
	c.RegistrationRepo = repository.NewPostgresRegistrationRepository(db.Pool)
	c.MemberRepo = repository.NewPostgresMemberRepository(db.Pool)
	c.DonationRepo = repository.NewPostgresDonationRepository(db.Pool)
	c.AnnouncementRepo = repository.NewPostgresAnnouncementRepository(db.Pool)

	// Services
	c.AuthService = service.NewAuthService(c.UserRepo, &cfg.JWT)
	c.MosqueService = service.NewMosqueService(c.MosqueRepo, c.CommitteeRepo, c.UserRepo)
	c.EventService = service.NewEventService(c.EventRepo, c.RegistrationRepo, c.MosqueRepo, cfg.App.BaseURL)
	c.RegistrationService = service.NewRegistrationService(c.RegistrationRepo, c.EventRepo, c.MosqueRepo)
	c.MemberService = service.NewMemberService(c.MemberRepo, c.MosqueRepo)
	c.DonationService = service.NewDonationService(c.DonationRepo, c.MosqueRepo)
	c.AnnouncementService = service.NewAnnouncementService(c.AnnouncementRepo, c.MosqueRepo)
	c.PrayerService = service.NewPrayerService(redisClient, &cfg.Prayer)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(db)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.MosqueHandler = handler.NewMosqueHandler(c.MosqueService)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.RegistrationHandler = handler.NewRegistrationHandler(c.RegistrationService)
	c.MemberHandler = handler.NewMemberHandler(c.MemberService)
	c.DonationHandler = handler.NewDonationHandler(c.DonationService)
	c.AnnouncementHandler = handler.NewAnnouncementHandler(c.AnnouncementService)
	c.PrayerHandler = handler.NewPrayerHandler(c.PrayerService)
	c.PublicHandler = handler.NewPublicHandler(c.RegistrationService, c.EventService)

	return c
}
