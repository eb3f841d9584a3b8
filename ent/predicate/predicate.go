// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// DailyChallenge is the predicate function for dailychallenge builders.
type DailyChallenge func(*sql.Selector)

// DifficultQuestion is the predicate function for difficultquestion builders.
type DifficultQuestion func(*sql.Selector)

// LLMEvent is the predicate function for llmevent builders.
type LLMEvent func(*sql.Selector)

// LevelState is the predicate function for levelstate builders.
type LevelState func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PointEvent is the predicate function for pointevent builders.
type PointEvent func(*sql.Selector)

// PointState is the predicate function for pointstate builders.
type PointState func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TableStat is the predicate function for tablestat builders.
type TableStat func(*sql.Selector)
