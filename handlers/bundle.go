package handlers

// HandlerBundle aggregates the handlers wired at startup so route
// registration takes a single dependency.
type HandlerBundle struct {
	User    *UserHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
}
