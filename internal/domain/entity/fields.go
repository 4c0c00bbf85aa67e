package entity

import (
	"strconv"
	"strings"

	domainerrors "menubuilder/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Field declares one editable draft value beyond the name and ID every kind
// has, settable from raw operator input. The edit forms and the console's
// field command run off this table, so every typed field of a record is
// reachable without the shell knowing the record's shape.
type Field[E any] struct {
	// Name is the operator-facing field name.
	Name string
	// Set parses raw and applies it to the record. Empty input clears
	// optional fields. Parse failures leave the record unchanged.
	Set func(E, string) (E, error)
}

func parseFieldID(raw string) (EntityID, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(domainerrors.ErrInvalidValue,
			"%q is not a record id", raw)
	}

	return EntityID(parsed), nil
}

// parseScalarRef reads an optional reference. Empty input clears it.
func parseScalarRef(raw string) (*EntityID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := parseFieldID(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// parseRefList reads a comma-separated ID list. Empty input clears it.
func parseRefList(raw string) ([]EntityID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]EntityID, 0, len(parts))
	for _, part := range parts {
		id, err := parseFieldID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func parseFieldDecimal(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(domainerrors.ErrInvalidValue,
			"%q is not a number", raw)
	}

	return value, nil
}

// parseItemPrices reads comma-separated "level:price" pairs, the same shape
// the CSV export writes. Empty input clears the whole list.
func parseItemPrices(raw string) ([]ItemPrice, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	prices := make([]ItemPrice, 0, len(parts))
	for _, part := range parts {
		level, amount, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrInvalidValue,
				"%q is not a level:price pair", strings.TrimSpace(part))
		}

		id, err := parseFieldID(level)
		if err != nil {
			return nil, err
		}
		price, err := parseFieldDecimal(amount)
		if err != nil {
			return nil, err
		}
		prices = append(prices, ItemPrice{PriceLevelID: id, Price: price})
	}

	return prices, nil
}

func scalarRefField[E any](name string, set func(E, *EntityID) E) Field[E] {
	return Field[E]{
		Name: name,
		Set: func(rec E, raw string) (E, error) {
			id, err := parseScalarRef(raw)
			if err != nil {
				return rec, err
			}

			return set(rec, id), nil
		},
	}
}

func refListField[E any](name string, set func(E, []EntityID) E) Field[E] {
	return Field[E]{
		Name: name,
		Set: func(rec E, raw string) (E, error) {
			ids, err := parseRefList(raw)
			if err != nil {
				return rec, err
			}

			return set(rec, ids), nil
		},
	}
}

func decimalField[E any](name string, set func(E, decimal.Decimal) E) Field[E] {
	return Field[E]{
		Name: name,
		Set: func(rec E, raw string) (E, error) {
			value, err := parseFieldDecimal(raw)
			if err != nil {
				return rec, err
			}

			return set(rec, value), nil
		},
	}
}
