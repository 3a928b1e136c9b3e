package lifecycle

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/types"
)

// InvalidTransitionError reports an illegal state-machine edge. It
// carries both statuses so callers can render a precise message.
type InvalidTransitionError struct {
	ApplicationID uuid.UUID
	From          types.ApplicationStatus
	To            types.ApplicationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for application %s: %s -> %s", e.ApplicationID, e.From, e.To)
}
