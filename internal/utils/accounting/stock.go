package accounting

import (
	"slices"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
)

// StockMovements lists one movement per line of every posted stock-moving
// document dated within [start, end] (whole days), newest first.
func StockMovements(documents []domain.Document, start, end time.Time) []domain.StockMovement {
	from := StartOfDay(start)
	to := EndOfDay(end)

	var moves []domain.StockMovement
	for _, doc := range documents {
		if !doc.Status.IsPosted() {
			continue
		}
		direction := StockDirection(doc.Type)
		if direction == domain.StockNone {
			continue
		}
		if doc.Date.Before(from) || doc.Date.After(to) {
			continue
		}
		for _, item := range doc.Items {
			moves = append(moves, domain.StockMovement{
				MovementID:  doc.DocumentID + "_" + item.LineID,
				Date:        doc.Date,
				DocumentRef: doc.Reference,
				DocType:     doc.Type,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Direction:   direction,
				PartnerName: doc.PartnerName,
			})
		}
	}

	slices.SortStableFunc(moves, func(a, b domain.StockMovement) int {
		return b.Date.Compare(a.Date)
	})
	return moves
}
