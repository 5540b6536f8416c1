package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is implemented by every resource kept in a store.
//
// Stores assign the ID on creation and call ApplyDefaults with the
// creation time before the resource is saved.
type Entity interface {
	GetID() uint
	SetID(id uint)
	ApplyDefaults(now time.Time)
	Self() string
}

// Optional is a single field of a patch. Only fields with Set == true
// are written when the patch is applied.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional that is set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o Optional[T]) apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// applyID writes a set reference the same way ApplyDefaults stores it.
func applyID(o Optional[*uint], dst **uint) {
	if o.Set {
		*dst = NilIfZero(o.Value)
	}
}

// NilIfZero drops references to ID 0, which is never assigned. Other
// references are copied so the result does not alias id.
func NilIfZero(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}
