package enums

import "fmt"

// DeliveryProvider identifies who carries a delivery order to the customer.
type DeliveryProvider string

const (
	DeliveryProviderRestaurant   DeliveryProvider = "restaurant"
	DeliveryProviderDaleelBalady DeliveryProvider = "daleel_balady"
)

var validDeliveryProviders = []DeliveryProvider{
	DeliveryProviderRestaurant,
	DeliveryProviderDaleelBalady,
}

// String implements fmt.Stringer.
func (p DeliveryProvider) String() string {
	return string(p)
}

// IsValid reports whether the value is a known DeliveryProvider.
func (p DeliveryProvider) IsValid() bool {
	for _, candidate := range validDeliveryProviders {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseDeliveryProvider converts raw input into a DeliveryProvider.
func ParseDeliveryProvider(value string) (DeliveryProvider, error) {
	for _, candidate := range validDeliveryProviders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery provider %q", value)
}
