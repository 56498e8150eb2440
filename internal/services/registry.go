package services

import (
	"eventora_backend/internal/email"
	"eventora_backend/internal/payment"
	"eventora_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService             AuthService
	UserService             UserService
	CatalogService          CatalogService
	BookingService          BookingService
	DecoratorRequestService DecoratorRequestService
	BlogService             BlogService
	PaymentService          PaymentService
	StatsService            StatsService
	EmailProvider           email.Provider
}

// NewServiceContainer wires repositories and external providers into the
// service layer.
func NewServiceContainer(db *gorm.DB, gateway payment.Gateway, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	requestRepo := repositories.NewDecoratorRequestRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	return &ServiceContainer{
		AuthService:             NewAuthService(userRepo, refreshTokenRepo),
		UserService:             NewUserService(userRepo),
		CatalogService:          NewCatalogService(serviceRepo),
		BookingService:          NewBookingService(bookingRepo, serviceRepo, userRepo),
		DecoratorRequestService: NewDecoratorRequestService(requestRepo, userRepo, emailProvider),
		BlogService:             NewBlogService(blogRepo),
		PaymentService:          NewPaymentService(gateway, paymentRepo, bookingRepo, emailProvider),
		StatsService:            NewStatsService(userRepo, serviceRepo, bookingRepo),
		EmailProvider:           emailProvider,
	}
}
