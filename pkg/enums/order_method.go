package enums

import "fmt"

// OrderMethod selects which fulfillment flow the checkout wizard runs.
type OrderMethod string

const (
	OrderMethodDineIn   OrderMethod = "dine_in"
	OrderMethodDelivery OrderMethod = "delivery"
)

var validOrderMethods = []OrderMethod{
	OrderMethodDineIn,
	OrderMethodDelivery,
}

// String implements fmt.Stringer.
func (m OrderMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known OrderMethod.
func (m OrderMethod) IsValid() bool {
	for _, candidate := range validOrderMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseOrderMethod converts raw input into an OrderMethod.
func ParseOrderMethod(value string) (OrderMethod, error) {
	for _, candidate := range validOrderMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order method %q", value)
}
