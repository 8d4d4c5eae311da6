package entity

import (
	"time"

	"github.com/google/uuid"
)

// SalesRecord is one observation of a business's sales metrics.
// Monetary values are integers in minor currency units; the record's Date,
// not its insertion order, determines which observation is "latest".
type SalesRecord struct {
	ID            int       // Sequential identifier assigned by the database.
	BusinessID    uuid.UUID // Weak reference to the owning business User.
	Date          time.Time // Observation time; defaults to the insertion time.
	Revenue       int       // Revenue in minor currency units.
	Conversions   int       // Number of conversions.
	AvgOrderValue int       // Average order value in minor currency units.
}
