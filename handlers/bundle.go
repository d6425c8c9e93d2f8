package handlers

import (
	providerRepoPkg "pawhub/database/repository/provider"
	userRepoPkg "pawhub/database/repository/user"
)

// HandlerBundle groups the HTTP handlers together with the repositories the
// auth middleware needs for token-hash lookups.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	ProviderRepo providerRepoPkg.ProviderRepository

	Users     *UserHandler
	Providers *ProviderHandler
	Bookings  *BookingHandler
	Donations *DonationHandler
	Admin     *AdminHandler
}
