package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la transferencia definitiva de un perro a su comprador. Se crea
// exactamente una vez por perro y después no se modifica.
type Sale struct {
	ID      string
	DogID   string
	TutorID string
	Amount  decimal.Decimal
	Date    time.Time

	CreatedAt time.Time
}
