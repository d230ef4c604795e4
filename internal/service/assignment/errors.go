package assignment

import "errors"

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNoEligibleDrivers    = errors.New("no eligible drivers")
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
)
