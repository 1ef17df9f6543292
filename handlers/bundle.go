package handlers

// HandlerBundle groups the portal's handlers for route registration.
type HandlerBundle struct {
	User         *UserHandler
	Doctor       *DoctorHandler
	Search       *SearchHandler
	Booking      *BookingHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
}
