package main

import "eventora_backend/internal/app"

// @title Eventora API
// @version 1.0
// @description Backend for the Eventora event-decoration marketplace: catalog, bookings, decorator applications, payments and admin tooling.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
