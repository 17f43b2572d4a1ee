package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ticketIDPrefix   = "TKT-"
	fallbackPrefix   = "MAA-"
	ticketIDHexLen   = 8
	ticketIDAttempts = 5
)

// TicketExistenceChecker is the slice of the store the generator needs.
type TicketExistenceChecker interface {
	ExistsByTicket(ctx context.Context, ticket string) (bool, error)
}

// GenerateTicketID produces a candidate ticket identifier that did not exist
// in the store at the time of the check. The existence pre-check is advisory;
// the store's unique constraint remains the authoritative guard, so callers
// must retry the insert on a duplicate-key violation.
//
// When every attempt collides, or the existence check itself fails, it falls
// back to a timestamp-derived identifier so creation never blocks on
// identifier generation.
func GenerateTicketID(ctx context.Context, store TicketExistenceChecker) string {
	for i := 0; i < ticketIDAttempts; i++ {
		candidate := ticketIDPrefix + randomHex(ticketIDHexLen)
		exists, err := store.ExistsByTicket(ctx, candidate)
		if err != nil {
			break
		}
		if !exists {
			return candidate
		}
	}
	return fallbackPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func randomHex(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
