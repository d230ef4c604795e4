package driver_availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"afyalinks/internal/entities"
)

var ErrInvalidWindow = errors.New("invalid availability window")

// AvailabilityPolicy decides whether a driver may take an assignment at a
// given moment, based on the profile's available-hours window.
type AvailabilityPolicy struct{}

func New() *AvailabilityPolicy {
	return &AvailabilityPolicy{}
}

// Eligible is deliberately fail-open: a driver without a profile, or with a
// window we cannot parse, stays in the candidate pool. Filtering them out
// would silently shrink an already small pilot fleet on a typo.
func (p *AvailabilityPolicy) Eligible(profile *entities.DriverProfile, at time.Time) bool {
	if profile == nil || strings.TrimSpace(profile.AvailableHours) == "" {
		return true
	}

	startHour, endHour, err := ParseWindow(profile.AvailableHours)
	if err != nil {
		return true
	}

	hour := at.Hour()
	return hour >= startHour && hour < endHour
}

// ParseWindow parses "HH:MM-HH:MM" and returns the hour bounds of the
// half-open interval [start, end). Minutes are accepted but ignored.
func ParseWindow(window string) (startHour, endHour int, err error) {
	parts := strings.Split(strings.TrimSpace(window), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}

	startHour, err = parseHour(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}
	endHour, err = parseHour(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}

	return startHour, endHour, nil
}

func parseHour(s string) (int, error) {
	hhmm := strings.Split(strings.TrimSpace(s), ":")
	if len(hhmm) != 2 {
		return 0, errors.New("expected HH:MM")
	}

	hour, err := strconv.Atoi(hhmm[0])
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 24 {
		return 0, errors.New("hour out of range")
	}
	if _, err := strconv.Atoi(hhmm[1]); err != nil {
		return 0, err
	}

	return hour, nil
}
