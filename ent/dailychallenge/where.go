// Code generated by ent, DO NOT EDIT.

package dailychallenge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLTE(FieldID, id))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldDay, v))
}

// TargetProblems applies equality check predicate on the "target_problems" field. It's identical to TargetProblemsEQ.
func TargetProblems(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldTargetProblems, v))
}

// CompletedProblems applies equality check predicate on the "completed_problems" field. It's identical to CompletedProblemsEQ.
func CompletedProblems(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldCompletedProblems, v))
}

// StreakCount applies equality check predicate on the "streak_count" field. It's identical to StreakCountEQ.
func StreakCount(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldStreakCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldCreatedAt, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLTE(FieldDay, v))
}

// TargetProblemsEQ applies the EQ predicate on the "target_problems" field.
func TargetProblemsEQ(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldTargetProblems, v))
}

// TargetProblemsNEQ applies the NEQ predicate on the "target_problems" field.
func TargetProblemsNEQ(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNEQ(FieldTargetProblems, v))
}

// TargetProblemsIn applies the In predicate on the "target_problems" field.
func TargetProblemsIn(vs ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldIn(FieldTargetProblems, vs...))
}

// TargetProblemsNotIn applies the NotIn predicate on the "target_problems" field.
func TargetProblemsNotIn(vs ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNotIn(FieldTargetProblems, vs...))
}

// TargetProblemsGT applies the GT predicate on the "target_problems" field.
func TargetProblemsGT(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGT(FieldTargetProblems, v))
}

// TargetProblemsGTE applies the GTE predicate on the "target_problems" field.
func TargetProblemsGTE(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGTE(FieldTargetProblems, v))
}

// TargetProblemsLT applies the LT predicate on the "target_problems" field.
func TargetProblemsLT(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLT(FieldTargetProblems, v))
}

// TargetProblemsLTE applies the LTE predicate on the "target_problems" field.
func TargetProblemsLTE(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLTE(FieldTargetProblems, v))
}

// CompletedProblemsEQ applies the EQ predicate on the "completed_problems" field.
func CompletedProblemsEQ(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldCompletedProblems, v))
}

// CompletedProblemsNEQ applies the NEQ predicate on the "completed_problems" field.
func CompletedProblemsNEQ(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNEQ(FieldCompletedProblems, v))
}

// CompletedProblemsIn applies the In predicate on the "completed_problems" field.
func CompletedProblemsIn(vs ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldIn(FieldCompletedProblems, vs...))
}

// CompletedProblemsNotIn applies the NotIn predicate on the "completed_problems" field.
func CompletedProblemsNotIn(vs ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNotIn(FieldCompletedProblems, vs...))
}

// CompletedProblemsGT applies the GT predicate on the "completed_problems" field.
func CompletedProblemsGT(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGT(FieldCompletedProblems, v))
}

// CompletedProblemsGTE applies the GTE predicate on the "completed_problems" field.
func CompletedProblemsGTE(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGTE(FieldCompletedProblems, v))
}

// CompletedProblemsLT applies the LT predicate on the "completed_problems" field.
func CompletedProblemsLT(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLT(FieldCompletedProblems, v))
}

// CompletedProblemsLTE applies the LTE predicate on the "completed_problems" field.
func CompletedProblemsLTE(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLTE(FieldCompletedProblems, v))
}

// StreakCountEQ applies the EQ predicate on the "streak_count" field.
func StreakCountEQ(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldStreakCount, v))
}

// StreakCountNEQ applies the NEQ predicate on the "streak_count" field.
func StreakCountNEQ(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNEQ(FieldStreakCount, v))
}

// StreakCountIn applies the In predicate on the "streak_count" field.
func StreakCountIn(vs ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldIn(FieldStreakCount, vs...))
}

// StreakCountNotIn applies the NotIn predicate on the "streak_count" field.
func StreakCountNotIn(vs ...int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNotIn(FieldStreakCount, vs...))
}

// StreakCountGT applies the GT predicate on the "streak_count" field.
func StreakCountGT(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGT(FieldStreakCount, v))
}

// StreakCountGTE applies the GTE predicate on the "streak_count" field.
func StreakCountGTE(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGTE(FieldStreakCount, v))
}

// StreakCountLT applies the LT predicate on the "streak_count" field.
func StreakCountLT(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLT(FieldStreakCount, v))
}

// StreakCountLTE applies the LTE predicate on the "streak_count" field.
func StreakCountLTE(v int) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLTE(FieldStreakCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyChallenge) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyChallenge) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyChallenge) predicate.DailyChallenge {
	return predicate.DailyChallenge(sql.NotPredicates(p))
}
