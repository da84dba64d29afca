package ledger

import (
	"github.com/shopspring/decimal"
)

// StockState is the cost-relevant slice of a product: quantity on hand, the
// running weighted-average unit cost, and the last known unit purchase price.
type StockState struct {
	Quantity     int64
	WeightedCost decimal.Decimal
	BuyingPrice  decimal.Decimal
}

// StockEvent is one stock-affecting event applied against a StockState.
// UnitPrice is the event's unit price: the purchase price for inbound events,
// ignored for cost purposes on outbound ones.
type StockEvent struct {
	Kind      TransactionType
	Quantity  int64
	UnitPrice decimal.Decimal
}

// CostBasisResult carries the product state after the event plus the unit
// cost frozen onto the ledger row recording it.
type CostBasisResult struct {
	State    StockState
	UnitCost decimal.Decimal
}

// ApplyStockEvent is the single cost-basis computation every mutation path
// goes through. It is pure: callers persist the returned state themselves.
//
// Inbound events (PURCHASE, stock imports) with a positive unit price fold
// the price into the weighted average and always refresh the buying price.
// Outbound events (SALE) only decrement stock; the departing units are
// charged the current weighted cost, falling back to the buying price when
// no average exists yet. RETURN and CANCEL leave stock and cost untouched.
func ApplyStockEvent(state StockState, event StockEvent) CostBasisResult {
	switch event.Kind {
	case TransactionTypePurchase:
		return applyInbound(state, event)
	case TransactionTypeSale:
		next := state
		next.Quantity = state.Quantity - event.Quantity
		return CostBasisResult{State: next, UnitCost: departingUnitCost(state)}
	default:
		// RETURN / CANCEL: reversal policy is deliberately undefined, the
		// event is recorded at the prevailing cost without moving stock.
		return CostBasisResult{State: state, UnitCost: departingUnitCost(state)}
	}
}

func applyInbound(state StockState, event StockEvent) CostBasisResult {
	next := state
	next.Quantity = state.Quantity + event.Quantity

	if event.UnitPrice.IsPositive() {
		switch {
		case state.Quantity <= 0 || state.WeightedCost.IsZero():
			// No meaningful average to extend yet.
			next.WeightedCost = event.UnitPrice
		case next.Quantity > 0:
			currentValue := decimal.NewFromInt(state.Quantity).Mul(state.WeightedCost)
			incomingValue := decimal.NewFromInt(event.Quantity).Mul(event.UnitPrice)
			next.WeightedCost = currentValue.Add(incomingValue).Div(decimal.NewFromInt(next.Quantity))
		default:
			// Averaging over non-positive stock is undefined; keep the cost.
		}
		next.BuyingPrice = event.UnitPrice
	}

	return CostBasisResult{State: next, UnitCost: event.UnitPrice}
}

// departingUnitCost is the unit cost charged to stock leaving the product:
// the weighted average if positive, otherwise the last buying price.
func departingUnitCost(state StockState) decimal.Decimal {
	if state.WeightedCost.IsPositive() {
		return state.WeightedCost
	}
	return state.BuyingPrice
}
