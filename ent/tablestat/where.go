// Code generated by ent, DO NOT EDIT.

package tablestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLTE(FieldID, id))
}

// TotalProblems applies equality check predicate on the "total_problems" field. It's identical to TotalProblemsEQ.
func TotalProblems(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldTotalProblems, v))
}

// CorrectProblems applies equality check predicate on the "correct_problems" field. It's identical to CorrectProblemsEQ.
func CorrectProblems(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldCorrectProblems, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldLastUpdated, v))
}

// TableEQ applies the EQ predicate on the "table" field.
func TableEQ(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldTable, v))
}

// TableNEQ applies the NEQ predicate on the "table" field.
func TableNEQ(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNEQ(FieldTable, v))
}

// TableIn applies the In predicate on the "table" field.
func TableIn(vs ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldIn(FieldTable, vs...))
}

// TableNotIn applies the NotIn predicate on the "table" field.
func TableNotIn(vs ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNotIn(FieldTable, vs...))
}

// TableGT applies the GT predicate on the "table" field.
func TableGT(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGT(FieldTable, v))
}

// TableGTE applies the GTE predicate on the "table" field.
func TableGTE(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGTE(FieldTable, v))
}

// TableLT applies the LT predicate on the "table" field.
func TableLT(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLT(FieldTable, v))
}

// TableLTE applies the LTE predicate on the "table" field.
func TableLTE(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLTE(FieldTable, v))
}

// TotalProblemsEQ applies the EQ predicate on the "total_problems" field.
func TotalProblemsEQ(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldTotalProblems, v))
}

// TotalProblemsNEQ applies the NEQ predicate on the "total_problems" field.
func TotalProblemsNEQ(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNEQ(FieldTotalProblems, v))
}

// TotalProblemsIn applies the In predicate on the "total_problems" field.
func TotalProblemsIn(vs ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldIn(FieldTotalProblems, vs...))
}

// TotalProblemsNotIn applies the NotIn predicate on the "total_problems" field.
func TotalProblemsNotIn(vs ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNotIn(FieldTotalProblems, vs...))
}

// TotalProblemsGT applies the GT predicate on the "total_problems" field.
func TotalProblemsGT(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGT(FieldTotalProblems, v))
}

// TotalProblemsGTE applies the GTE predicate on the "total_problems" field.
func TotalProblemsGTE(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGTE(FieldTotalProblems, v))
}

// TotalProblemsLT applies the LT predicate on the "total_problems" field.
func TotalProblemsLT(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLT(FieldTotalProblems, v))
}

// TotalProblemsLTE applies the LTE predicate on the "total_problems" field.
func TotalProblemsLTE(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLTE(FieldTotalProblems, v))
}

// CorrectProblemsEQ applies the EQ predicate on the "correct_problems" field.
func CorrectProblemsEQ(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldCorrectProblems, v))
}

// CorrectProblemsNEQ applies the NEQ predicate on the "correct_problems" field.
func CorrectProblemsNEQ(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNEQ(FieldCorrectProblems, v))
}

// CorrectProblemsIn applies the In predicate on the "correct_problems" field.
func CorrectProblemsIn(vs ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldIn(FieldCorrectProblems, vs...))
}

// CorrectProblemsNotIn applies the NotIn predicate on the "correct_problems" field.
func CorrectProblemsNotIn(vs ...int) predicate.TableStat {
	return predicate.TableStat(sql.FieldNotIn(FieldCorrectProblems, vs...))
}

// CorrectProblemsGT applies the GT predicate on the "correct_problems" field.
func CorrectProblemsGT(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGT(FieldCorrectProblems, v))
}

// CorrectProblemsGTE applies the GTE predicate on the "correct_problems" field.
func CorrectProblemsGTE(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldGTE(FieldCorrectProblems, v))
}

// CorrectProblemsLT applies the LT predicate on the "correct_problems" field.
func CorrectProblemsLT(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLT(FieldCorrectProblems, v))
}

// CorrectProblemsLTE applies the LTE predicate on the "correct_problems" field.
func CorrectProblemsLTE(v int) predicate.TableStat {
	return predicate.TableStat(sql.FieldLTE(FieldCorrectProblems, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.TableStat {
	return predicate.TableStat(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TableStat) predicate.TableStat {
	return predicate.TableStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TableStat) predicate.TableStat {
	return predicate.TableStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TableStat) predicate.TableStat {
	return predicate.TableStat(sql.NotPredicates(p))
}
