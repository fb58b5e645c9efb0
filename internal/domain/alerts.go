package domain

type AlertLevel string

const (
	AlertNone       AlertLevel = ""
	AlertLow        AlertLevel = "low"
	AlertCritical   AlertLevel = "critical"
	AlertOutOfStock AlertLevel = "out_of_stock"
)

// AlertLevelFor classifies a stock level against the item's minimum.
// Evaluated against the NEW stock value after every change:
// zero is out_of_stock, at or below half the minimum is critical, at or
// below the minimum is low, anything above is adequately stocked.
func AlertLevelFor(stock, minStockLevel int) AlertLevel {
	switch {
	case stock <= 0:
		return AlertOutOfStock
	case stock*2 <= minStockLevel:
		return AlertCritical
	case stock <= minStockLevel:
		return AlertLow
	default:
		return AlertNone
	}
}
