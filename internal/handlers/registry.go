package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler             *AuthHandler
	UserHandler             *UserHandler
	ServiceHandler          *ServiceHandler
	BookingHandler          *BookingHandler
	DecoratorRequestHandler *DecoratorRequestHandler
	BlogHandler             *BlogHandler
	PaymentHandler          *PaymentHandler
	StatsHandler            *StatsHandler
}
