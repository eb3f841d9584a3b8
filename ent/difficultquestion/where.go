// Code generated by ent, DO NOT EDIT.

package difficultquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldID, id))
}

// Identifier applies equality check predicate on the "identifier" field. It's identical to IdentifierEQ.
func Identifier(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldIdentifier, v))
}

// First applies equality check predicate on the "first" field. It's identical to FirstEQ.
func First(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldFirst, v))
}

// Second applies equality check predicate on the "second" field. It's identical to SecondEQ.
func Second(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldSecond, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastIncorrectAt applies equality check predicate on the "last_incorrect_at" field. It's identical to LastIncorrectAtEQ.
func LastIncorrectAt(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldLastIncorrectAt, v))
}

// IdentifierEQ applies the EQ predicate on the "identifier" field.
func IdentifierEQ(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldIdentifier, v))
}

// IdentifierNEQ applies the NEQ predicate on the "identifier" field.
func IdentifierNEQ(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldIdentifier, v))
}

// IdentifierIn applies the In predicate on the "identifier" field.
func IdentifierIn(vs ...string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldIdentifier, vs...))
}

// IdentifierNotIn applies the NotIn predicate on the "identifier" field.
func IdentifierNotIn(vs ...string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldIdentifier, vs...))
}

// IdentifierGT applies the GT predicate on the "identifier" field.
func IdentifierGT(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldIdentifier, v))
}

// IdentifierGTE applies the GTE predicate on the "identifier" field.
func IdentifierGTE(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldIdentifier, v))
}

// IdentifierLT applies the LT predicate on the "identifier" field.
func IdentifierLT(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldIdentifier, v))
}

// IdentifierLTE applies the LTE predicate on the "identifier" field.
func IdentifierLTE(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldIdentifier, v))
}

// IdentifierContains applies the Contains predicate on the "identifier" field.
func IdentifierContains(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldContains(FieldIdentifier, v))
}

// IdentifierHasPrefix applies the HasPrefix predicate on the "identifier" field.
func IdentifierHasPrefix(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldHasPrefix(FieldIdentifier, v))
}

// IdentifierHasSuffix applies the HasSuffix predicate on the "identifier" field.
func IdentifierHasSuffix(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldHasSuffix(FieldIdentifier, v))
}

// IdentifierEqualFold applies the EqualFold predicate on the "identifier" field.
func IdentifierEqualFold(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEqualFold(FieldIdentifier, v))
}

// IdentifierContainsFold applies the ContainsFold predicate on the "identifier" field.
func IdentifierContainsFold(v string) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldContainsFold(FieldIdentifier, v))
}

// FirstEQ applies the EQ predicate on the "first" field.
func FirstEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldFirst, v))
}

// FirstNEQ applies the NEQ predicate on the "first" field.
func FirstNEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldFirst, v))
}

// FirstIn applies the In predicate on the "first" field.
func FirstIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldFirst, vs...))
}

// FirstNotIn applies the NotIn predicate on the "first" field.
func FirstNotIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldFirst, vs...))
}

// FirstGT applies the GT predicate on the "first" field.
func FirstGT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldFirst, v))
}

// FirstGTE applies the GTE predicate on the "first" field.
func FirstGTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldFirst, v))
}

// FirstLT applies the LT predicate on the "first" field.
func FirstLT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldFirst, v))
}

// FirstLTE applies the LTE predicate on the "first" field.
func FirstLTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldFirst, v))
}

// SecondEQ applies the EQ predicate on the "second" field.
func SecondEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldSecond, v))
}

// SecondNEQ applies the NEQ predicate on the "second" field.
func SecondNEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldSecond, v))
}

// SecondIn applies the In predicate on the "second" field.
func SecondIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldSecond, vs...))
}

// SecondNotIn applies the NotIn predicate on the "second" field.
func SecondNotIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldSecond, vs...))
}

// SecondGT applies the GT predicate on the "second" field.
func SecondGT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldSecond, v))
}

// SecondGTE applies the GTE predicate on the "second" field.
func SecondGTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldSecond, v))
}

// SecondLT applies the LT predicate on the "second" field.
func SecondLT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldSecond, v))
}

// SecondLTE applies the LTE predicate on the "second" field.
func SecondLTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldSecond, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastIncorrectAtEQ applies the EQ predicate on the "last_incorrect_at" field.
func LastIncorrectAtEQ(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldEQ(FieldLastIncorrectAt, v))
}

// LastIncorrectAtNEQ applies the NEQ predicate on the "last_incorrect_at" field.
func LastIncorrectAtNEQ(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNEQ(FieldLastIncorrectAt, v))
}

// LastIncorrectAtIn applies the In predicate on the "last_incorrect_at" field.
func LastIncorrectAtIn(vs ...time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldIn(FieldLastIncorrectAt, vs...))
}

// LastIncorrectAtNotIn applies the NotIn predicate on the "last_incorrect_at" field.
func LastIncorrectAtNotIn(vs ...time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldNotIn(FieldLastIncorrectAt, vs...))
}

// LastIncorrectAtGT applies the GT predicate on the "last_incorrect_at" field.
func LastIncorrectAtGT(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGT(FieldLastIncorrectAt, v))
}

// LastIncorrectAtGTE applies the GTE predicate on the "last_incorrect_at" field.
func LastIncorrectAtGTE(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldGTE(FieldLastIncorrectAt, v))
}

// LastIncorrectAtLT applies the LT predicate on the "last_incorrect_at" field.
func LastIncorrectAtLT(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLT(FieldLastIncorrectAt, v))
}

// LastIncorrectAtLTE applies the LTE predicate on the "last_incorrect_at" field.
func LastIncorrectAtLTE(v time.Time) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.FieldLTE(FieldLastIncorrectAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DifficultQuestion) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DifficultQuestion) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DifficultQuestion) predicate.DifficultQuestion {
	return predicate.DifficultQuestion(sql.NotPredicates(p))
}
