package handlers

// HandlerBundle aggregates the handler groups wired in main and handed
// to route registration.
type HandlerBundle struct {
	Booking   *BookingHandler
	Schedule  *ScheduleHandler
	Facility  *FacilityHandler
	EntryPass *EntryPassHandler
}
