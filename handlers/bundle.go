package handlers

// HandlerBundle groups every endpoint handler so route registration takes one
// argument.
type HandlerBundle struct {
	Auth          *AuthHandler
	Public        *PublicHandler
	User          *UserHandler
	Booking       *BookingHandler
	Review        *ReviewHandler
	KYC           *KYCHandler
	Notification  *NotificationHandler
	Payment       *PaymentHandler
	Therapist     *TherapistHandler
	Admin         *AdminHandler
	Storage       *StorageHandler
	Geo           *GeoHandler
	Conversations *ConversationHandler
}
