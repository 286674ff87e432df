package statemachine

import (
	"errors"

	"github.com/rafaslide/carddz/models"
)

// allStatuses is the closed set of order statuses in their natural
// progression order.
var allStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCancelled,
}

var statusSet = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(allStatuses))
	for _, s := range allStatuses {
		m[s] = true
	}
	return m
}()

var (
	ErrUnknownStatus = errors.New("unknown order status")
	ErrSameStatus    = errors.New("order already has this status")
)

// IsValidStatus reports whether s belongs to the status enumeration.
func IsValidStatus(s models.OrderStatus) bool {
	return statusSet[s]
}

// IsTerminal reports whether no further work happens in a status. The
// transition graph still permits leaving these states; restaurants correct
// mistakes by moving an order back.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// CanTransition validates a requested status change. The graph is lenient:
// any status may move to any other, only re-applying the current status is
// rejected. Who may transition (restaurant role, matching tenant) is the
// handler's concern, not the state machine's.
func CanTransition(from, to models.OrderStatus) error {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return ErrUnknownStatus
	}
	if from == to {
		return ErrSameStatus
	}
	return nil
}

// NextStatuses returns every status an order may move to from its current
// one, for clients rendering a status picker.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, s := range allStatuses {
		if s != from {
			nexts = append(nexts, s)
		}
	}
	return nexts
}

// AllStatuses returns the full enumeration for documentation endpoints.
func AllStatuses() []models.OrderStatus {
	return append([]models.OrderStatus(nil), allStatuses...)
}
