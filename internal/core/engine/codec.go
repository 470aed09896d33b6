package engine

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
)

// EncodeEvent serializes an event payload. The type travels separately in the record.
func EncodeEvent(e Event) (EventType, json.RawMessage, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode %s event: %w", e.Type(), err)
	}
	return e.Type(), payload, nil
}

// DecodeEvent restores an event from its type tag and payload.
func DecodeEvent(eventType EventType, payload json.RawMessage) (Event, error) {
	switch eventType {
	case EventSaveDocument:
		return decodeAs[SaveDocument](eventType, payload)
	case EventConvertDocument:
		return decodeAs[ConvertDocument](eventType, payload)
	case EventSetDocumentStatus:
		return decodeAs[SetDocumentStatus](eventType, payload)
	case EventSaveProduct:
		return decodeAs[SaveProduct](eventType, payload)
	case EventSavePartner:
		return decodeAs[SavePartner](eventType, payload)
	case EventDeletePartner:
		return decodeAs[DeletePartner](eventType, payload)
	case EventAddFamily:
		return decodeAs[AddFamily](eventType, payload)
	case EventUpdateFamily:
		return decodeAs[UpdateFamily](eventType, payload)
	case EventAddCategory:
		return decodeAs[AddCategory](eventType, payload)
	case EventUpdateCategory:
		return decodeAs[UpdateCategory](eventType, payload)
	case EventAddSubCategory:
		return decodeAs[AddSubCategory](eventType, payload)
	case EventUpdateSubCategory:
		return decodeAs[UpdateSubCategory](eventType, payload)
	case EventAddTaxRate:
		return decodeAs[AddTaxRate](eventType, payload)
	case EventDeleteTaxRate:
		return decodeAs[DeleteTaxRate](eventType, payload)
	case EventUpdateCompany:
		return decodeAs[UpdateCompany](eventType, payload)
	case EventSaveUser:
		return decodeAs[SaveUser](eventType, payload)
	case EventDeleteUser:
		return decodeAs[DeleteUser](eventType, payload)
	case EventAddPayment:
		return decodeAs[AddPayment](eventType, payload)
	case EventDeletePayment:
		return decodeAs[DeletePayment](eventType, payload)
	case EventUpdatePaymentStatus:
		return decodeAs[UpdatePaymentStatus](eventType, payload)
	case EventAddExpense:
		return decodeAs[AddExpense](eventType, payload)
	case EventDeleteExpense:
		return decodeAs[DeleteExpense](eventType, payload)
	case EventOpenCashSession:
		return decodeAs[OpenCashSession](eventType, payload)
	case EventCloseCashSession:
		return decodeAs[CloseCashSession](eventType, payload)
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownEvent, eventType)
	}
}

func decodeAs[T Event](eventType EventType, payload json.RawMessage) (Event, error) {
	var e T
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", eventType, err)
	}
	return e, nil
}
