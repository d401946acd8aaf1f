package helper

import "pouchesitaly/constants"

// kustomStatusMap maps every remote status the provider reports to a
// local order status. Anything not listed stays pending.
var kustomStatusMap = map[string]string{
	"authorized":        constants.ORDER_PROCESSING,
	"captured":          constants.ORDER_PROCESSING,
	"paid":              constants.ORDER_PROCESSING,
	"closed":            constants.ORDER_PROCESSING,
	"completed":         constants.ORDER_PROCESSING,
	"checkout_complete": constants.ORDER_PROCESSING,
	"cancelled":         constants.ORDER_CANCELLED,
	"canceled":          constants.ORDER_CANCELLED,
	"expired":           constants.ORDER_CANCELLED,
	"failed":            constants.ORDER_CANCELLED,
	"refunded":          constants.ORDER_REFUNDED,
}

// MapKustomStatus is total: every input, including empty and unknown
// strings, lands on exactly one local status.
func MapKustomStatus(remote string) string {
	if mapped, ok := kustomStatusMap[remote]; ok {
		return mapped
	}
	return constants.ORDER_PENDING
}

// orderTransitions is the explicit state machine for Order.Status.
// Bridge reconciliation moves pending forward; admins move paid orders
// through fulfilment and may cancel or refund at any point before
// delivery.
var orderTransitions = map[string][]string{
	constants.ORDER_PENDING:    {constants.ORDER_PROCESSING, constants.ORDER_CANCELLED, constants.ORDER_REFUNDED},
	constants.ORDER_PROCESSING: {constants.ORDER_SHIPPED, constants.ORDER_DELIVERED, constants.ORDER_CANCELLED, constants.ORDER_REFUNDED},
	constants.ORDER_SHIPPED:    {constants.ORDER_DELIVERED, constants.ORDER_PROCESSING, constants.ORDER_CANCELLED, constants.ORDER_REFUNDED},
	constants.ORDER_DELIVERED:  {constants.ORDER_SHIPPED, constants.ORDER_PROCESSING, constants.ORDER_REFUNDED},
	constants.ORDER_CANCELLED:  {},
	constants.ORDER_REFUNDED:   {},
}

// CanTransition reports whether an admin move from one status to
// another is legal. Same-status writes are allowed so reconciliation
// stays idempotent.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is one of the six order statuses.
func IsValidStatus(s string) bool {
	switch s {
	case constants.ORDER_PENDING, constants.ORDER_PROCESSING, constants.ORDER_SHIPPED,
		constants.ORDER_DELIVERED, constants.ORDER_CANCELLED, constants.ORDER_REFUNDED:
		return true
	}
	return false
}
