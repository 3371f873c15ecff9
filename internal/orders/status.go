package orders

// Known order statuses. Process accepts any string, so these are the
// values the vendor dashboard is expected to send, not an enum.
const (
	StatusWaiting        = "Waiting"
	StatusAccepted       = "Accepted"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "OutForDelivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
	StatusRejected       = "Rejected"
)
