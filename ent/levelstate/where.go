// Code generated by ent, DO NOT EDIT.

package levelstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LevelState {
	return predicate.LevelState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LevelState {
	return predicate.LevelState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LevelState {
	return predicate.LevelState(sql.FieldLTE(FieldID, id))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldLevel, v))
}

// TotalExperience applies equality check predicate on the "total_experience" field. It's identical to TotalExperienceEQ.
func TotalExperience(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldTotalExperience, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldTitle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldCreatedAt, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldLastUpdated, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.LevelState {
	return predicate.LevelState(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.LevelState {
	return predicate.LevelState(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldLTE(FieldLevel, v))
}

// TotalExperienceEQ applies the EQ predicate on the "total_experience" field.
func TotalExperienceEQ(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldTotalExperience, v))
}

// TotalExperienceNEQ applies the NEQ predicate on the "total_experience" field.
func TotalExperienceNEQ(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldNEQ(FieldTotalExperience, v))
}

// TotalExperienceIn applies the In predicate on the "total_experience" field.
func TotalExperienceIn(vs ...int) predicate.LevelState {
	return predicate.LevelState(sql.FieldIn(FieldTotalExperience, vs...))
}

// TotalExperienceNotIn applies the NotIn predicate on the "total_experience" field.
func TotalExperienceNotIn(vs ...int) predicate.LevelState {
	return predicate.LevelState(sql.FieldNotIn(FieldTotalExperience, vs...))
}

// TotalExperienceGT applies the GT predicate on the "total_experience" field.
func TotalExperienceGT(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldGT(FieldTotalExperience, v))
}

// TotalExperienceGTE applies the GTE predicate on the "total_experience" field.
func TotalExperienceGTE(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldGTE(FieldTotalExperience, v))
}

// TotalExperienceLT applies the LT predicate on the "total_experience" field.
func TotalExperienceLT(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldLT(FieldTotalExperience, v))
}

// TotalExperienceLTE applies the LTE predicate on the "total_experience" field.
func TotalExperienceLTE(v int) predicate.LevelState {
	return predicate.LevelState(sql.FieldLTE(FieldTotalExperience, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LevelState {
	return predicate.LevelState(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LevelState {
	return predicate.LevelState(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LevelState {
	return predicate.LevelState(sql.FieldContainsFold(FieldTitle, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.LevelState {
	return predicate.LevelState(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.LevelState {
	return predicate.LevelState(sql.FieldNotNull(FieldHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldLTE(FieldCreatedAt, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.LevelState {
	return predicate.LevelState(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LevelState) predicate.LevelState {
	return predicate.LevelState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LevelState) predicate.LevelState {
	return predicate.LevelState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LevelState) predicate.LevelState {
	return predicate.LevelState(sql.NotPredicates(p))
}
