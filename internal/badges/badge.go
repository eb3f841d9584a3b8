// Package badges awards achievement badges for practice milestones.
package badges

import "time"

// Type identifies one badge.
type Type string

const (
	// Correct-answer streaks.
	TypeStreak10 Type = "streak_10"
	TypeStreak20 Type = "streak_20"
	TypeStreak50 Type = "streak_50"

	// Lifetime problem counts.
	TypeProblems100  Type = "problems_100"
	TypeProblems500  Type = "problems_500"
	TypeProblems1000 Type = "problems_1000"

	// Fast answers.
	TypeSpeedster Type = "speedster"
	TypeLightning Type = "lightning"

	// Overcoming difficult questions.
	TypeOvercomer Type = "overcomer"
	TypeConqueror Type = "conqueror"

	// Table mastery.
	TypeTableMaster    Type = "table_master"
	TypeAllTableMaster Type = "all_table_master"

	// Daily challenge streaks.
	TypeDailyChampion Type = "daily_champion"
	TypeWeeklyWarrior Type = "weekly_warrior"

	// Level milestones.
	TypeLevel10 Type = "level_10"
	TypeLevel25 Type = "level_25"
	TypeLevel50 Type = "level_50"
)

// All lists every badge type in display order.
var All = []Type{
	TypeStreak10, TypeStreak20, TypeStreak50,
	TypeProblems100, TypeProblems500, TypeProblems1000,
	TypeSpeedster, TypeLightning,
	TypeOvercomer, TypeConqueror,
	TypeTableMaster, TypeAllTableMaster,
	TypeDailyChampion, TypeWeeklyWarrior,
	TypeLevel10, TypeLevel25, TypeLevel50,
}

// Info carries the display text for a badge type.
type Info struct {
	Icon        string
	Title       string
	Description string
	Requirement string
}

var infoTable = map[Type]Info{
	TypeStreak10:       {Icon: "🔥", Title: "Streak x10", Description: "Answered 10 in a row", Requirement: "10 correct answers in a row"},
	TypeStreak20:       {Icon: "🔥", Title: "Streak x20", Description: "Answered 20 in a row", Requirement: "20 correct answers in a row"},
	TypeStreak50:       {Icon: "🌋", Title: "Streak Master", Description: "Answered 50 in a row", Requirement: "50 correct answers in a row"},
	TypeProblems100:    {Icon: "⭐", Title: "100 Problems", Description: "Solved 100 problems", Requirement: "100 problems answered"},
	TypeProblems500:    {Icon: "🌟", Title: "500 Problems", Description: "Solved 500 problems", Requirement: "500 problems answered"},
	TypeProblems1000:   {Icon: "💫", Title: "1000 Problems", Description: "Solved 1000 problems", Requirement: "1000 problems answered"},
	TypeSpeedster:      {Icon: "🐇", Title: "Speedster", Description: "10 answers under 3 seconds", Requirement: "10 correct answers within 3s each"},
	TypeLightning:      {Icon: "⚡", Title: "Lightning", Description: "20 answers under 2 seconds", Requirement: "20 correct answers within 2s each"},
	TypeOvercomer:      {Icon: "🛡️", Title: "Overcomer", Description: "Overcame 5 tricky questions", Requirement: "5 difficult questions improved"},
	TypeConqueror:      {Icon: "🏆", Title: "Conqueror", Description: "Overcame 10 tricky questions", Requirement: "10 difficult questions improved"},
	TypeTableMaster:    {Icon: "🎓", Title: "Table Master", Description: "Mastered one table", Requirement: "86% correct on one table"},
	TypeAllTableMaster: {Icon: "👑", Title: "Grand Table Master", Description: "Mastered every table", Requirement: "86% correct on all 9 tables"},
	TypeDailyChampion:  {Icon: "📅", Title: "Daily Champion", Description: "Hit the daily goal 7 days straight", Requirement: "7-day challenge streak"},
	TypeWeeklyWarrior:  {Icon: "🗓️", Title: "Monthly Warrior", Description: "Hit the daily goal 30 days straight", Requirement: "30-day challenge streak"},
	TypeLevel10:        {Icon: "🔟", Title: "Level 10", Description: "Reached level 10", Requirement: "Reach level 10"},
	TypeLevel25:        {Icon: "🎖️", Title: "Level 25", Description: "Reached level 25", Requirement: "Reach level 25"},
	TypeLevel50:        {Icon: "🏅", Title: "Level 50", Description: "Reached level 50", Requirement: "Reach level 50"},
}

// DisplayInfo returns the display text for a badge type.
func (t Type) DisplayInfo() Info {
	return infoTable[t]
}

// Valid reports whether t is a known badge type.
func (t Type) Valid() bool {
	_, ok := infoTable[t]
	return ok
}

// Badge is one earned badge. IsNew marks badges the player has not seen
// yet.
type Badge struct {
	Type     Type
	EarnedAt time.Time
	IsNew    bool
}
