package booking

import "pawhub/models"

// MobileGroomingTravelFee is the flat surcharge for mobile grooming visits.
const MobileGroomingTravelFee = 15.0

// ComputeAmount calculates the payment amount for a booking: the provider's
// base fee, plus for grooming the summed per-service prices and, for mobile
// visits, the flat travel fee.
func ComputeAmount(provider *models.Provider, input models.BookingInput) float64 {
	amount := provider.Fee.Amount
	if input.ServiceType == models.ServiceGrooming && input.Grooming != nil {
		for _, svc := range input.Grooming.ServicesRequested {
			amount += svc.Price
		}
		if input.Grooming.ServiceType == "mobile" {
			amount += MobileGroomingTravelFee
		}
	}
	return amount
}
