// Code generated by ent, DO NOT EDIT.

package pointstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PointState {
	return predicate.PointState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PointState {
	return predicate.PointState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PointState {
	return predicate.PointState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PointState {
	return predicate.PointState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PointState {
	return predicate.PointState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PointState {
	return predicate.PointState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PointState {
	return predicate.PointState(sql.FieldLTE(FieldID, id))
}

// TotalEarned applies equality check predicate on the "total_earned" field. It's identical to TotalEarnedEQ.
func TotalEarned(v int) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldTotalEarned, v))
}

// Available applies equality check predicate on the "available" field. It's identical to AvailableEQ.
func Available(v int) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldAvailable, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldLastUpdated, v))
}

// TotalEarnedEQ applies the EQ predicate on the "total_earned" field.
func TotalEarnedEQ(v int) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldTotalEarned, v))
}

// TotalEarnedNEQ applies the NEQ predicate on the "total_earned" field.
func TotalEarnedNEQ(v int) predicate.PointState {
	return predicate.PointState(sql.FieldNEQ(FieldTotalEarned, v))
}

// TotalEarnedIn applies the In predicate on the "total_earned" field.
func TotalEarnedIn(vs ...int) predicate.PointState {
	return predicate.PointState(sql.FieldIn(FieldTotalEarned, vs...))
}

// TotalEarnedNotIn applies the NotIn predicate on the "total_earned" field.
func TotalEarnedNotIn(vs ...int) predicate.PointState {
	return predicate.PointState(sql.FieldNotIn(FieldTotalEarned, vs...))
}

// TotalEarnedGT applies the GT predicate on the "total_earned" field.
func TotalEarnedGT(v int) predicate.PointState {
	return predicate.PointState(sql.FieldGT(FieldTotalEarned, v))
}

// TotalEarnedGTE applies the GTE predicate on the "total_earned" field.
func TotalEarnedGTE(v int) predicate.PointState {
	return predicate.PointState(sql.FieldGTE(FieldTotalEarned, v))
}

// TotalEarnedLT applies the LT predicate on the "total_earned" field.
func TotalEarnedLT(v int) predicate.PointState {
	return predicate.PointState(sql.FieldLT(FieldTotalEarned, v))
}

// TotalEarnedLTE applies the LTE predicate on the "total_earned" field.
func TotalEarnedLTE(v int) predicate.PointState {
	return predicate.PointState(sql.FieldLTE(FieldTotalEarned, v))
}

// AvailableEQ applies the EQ predicate on the "available" field.
func AvailableEQ(v int) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldAvailable, v))
}

// AvailableNEQ applies the NEQ predicate on the "available" field.
func AvailableNEQ(v int) predicate.PointState {
	return predicate.PointState(sql.FieldNEQ(FieldAvailable, v))
}

// AvailableIn applies the In predicate on the "available" field.
func AvailableIn(vs ...int) predicate.PointState {
	return predicate.PointState(sql.FieldIn(FieldAvailable, vs...))
}

// AvailableNotIn applies the NotIn predicate on the "available" field.
func AvailableNotIn(vs ...int) predicate.PointState {
	return predicate.PointState(sql.FieldNotIn(FieldAvailable, vs...))
}

// AvailableGT applies the GT predicate on the "available" field.
func AvailableGT(v int) predicate.PointState {
	return predicate.PointState(sql.FieldGT(FieldAvailable, v))
}

// AvailableGTE applies the GTE predicate on the "available" field.
func AvailableGTE(v int) predicate.PointState {
	return predicate.PointState(sql.FieldGTE(FieldAvailable, v))
}

// AvailableLT applies the LT predicate on the "available" field.
func AvailableLT(v int) predicate.PointState {
	return predicate.PointState(sql.FieldLT(FieldAvailable, v))
}

// AvailableLTE applies the LTE predicate on the "available" field.
func AvailableLTE(v int) predicate.PointState {
	return predicate.PointState(sql.FieldLTE(FieldAvailable, v))
}

// BonusLedgerIsNil applies the IsNil predicate on the "bonus_ledger" field.
func BonusLedgerIsNil() predicate.PointState {
	return predicate.PointState(sql.FieldIsNull(FieldBonusLedger))
}

// BonusLedgerNotNil applies the NotNil predicate on the "bonus_ledger" field.
func BonusLedgerNotNil() predicate.PointState {
	return predicate.PointState(sql.FieldNotNull(FieldBonusLedger))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.PointState {
	return predicate.PointState(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PointState) predicate.PointState {
	return predicate.PointState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PointState) predicate.PointState {
	return predicate.PointState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PointState) predicate.PointState {
	return predicate.PointState(sql.NotPredicates(p))
}
