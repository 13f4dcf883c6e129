// Package ident generates opaque identifiers for reports, sub-items and
// support tickets.
package ident

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const ticketPrefix = "TKT"

// New returns a fresh globally-unique identifier.
func New() string {
	return uuid.NewString()
}

// TicketNumber returns a ticket number of the form TKT-NNNN with a
// 4-digit random suffix. No uniqueness is guaranteed; the number is a
// default the user may overwrite.
func TicketNumber() string {
	return fmt.Sprintf("%s-%d", ticketPrefix, 1000+rand.Intn(9000))
}
