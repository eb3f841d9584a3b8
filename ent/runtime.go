// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kukulab/kuku/ent/achievement"
	"github.com/kukulab/kuku/ent/answerevent"
	"github.com/kukulab/kuku/ent/badge"
	"github.com/kukulab/kuku/ent/dailychallenge"
	"github.com/kukulab/kuku/ent/difficultquestion"
	"github.com/kukulab/kuku/ent/levelstate"
	"github.com/kukulab/kuku/ent/llmevent"
	"github.com/kukulab/kuku/ent/message"
	"github.com/kukulab/kuku/ent/pointevent"
	"github.com/kukulab/kuku/ent/pointstate"
	"github.com/kukulab/kuku/ent/schema"
	"github.com/kukulab/kuku/ent/setting"
	"github.com/kukulab/kuku/ent/tablestat"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUUID is the schema descriptor for uuid field.
	achievementDescUUID := achievementFields[0].Descriptor()
	// achievement.DefaultUUID holds the default value on creation for the uuid field.
	achievement.DefaultUUID = achievementDescUUID.Default.(func() uuid.UUID)
	// achievementDescType is the schema descriptor for type field.
	achievementDescType := achievementFields[1].Descriptor()
	// achievement.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	achievement.TypeValidator = achievementDescType.Validators[0].(func(string) error)
	// achievementDescTitle is the schema descriptor for title field.
	achievementDescTitle := achievementFields[2].Descriptor()
	// achievement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievement.TitleValidator = achievementDescTitle.Validators[0].(func(string) error)
	// achievementDescDescription is the schema descriptor for description field.
	achievementDescDescription := achievementFields[3].Descriptor()
	// achievement.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	achievement.DescriptionValidator = achievementDescDescription.Validators[0].(func(string) error)
	// achievementDescIsSpecial is the schema descriptor for is_special field.
	achievementDescIsSpecial := achievementFields[5].Descriptor()
	// achievement.DefaultIsSpecial holds the default value on creation for the is_special field.
	achievement.DefaultIsSpecial = achievementDescIsSpecial.Default.(bool)
	// achievementDescIsShared is the schema descriptor for is_shared field.
	achievementDescIsShared := achievementFields[6].Descriptor()
	// achievement.DefaultIsShared holds the default value on creation for the is_shared field.
	achievement.DefaultIsShared = achievementDescIsShared.Default.(bool)
	// achievementDescEarnedAt is the schema descriptor for earned_at field.
	achievementDescEarnedAt := achievementFields[7].Descriptor()
	// achievement.DefaultEarnedAt holds the default value on creation for the earned_at field.
	achievement.DefaultEarnedAt = achievementDescEarnedAt.Default.(func() time.Time)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescIdentifier is the schema descriptor for identifier field.
	answereventDescIdentifier := answereventFields[0].Descriptor()
	// answerevent.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	answerevent.IdentifierValidator = answereventDescIdentifier.Validators[0].(func(string) error)
	// answereventDescTimeout is the schema descriptor for timeout field.
	answereventDescTimeout := answereventFields[4].Descriptor()
	// answerevent.DefaultTimeout holds the default value on creation for the timeout field.
	answerevent.DefaultTimeout = answereventDescTimeout.Default.(bool)
	// answereventDescPointsAwarded is the schema descriptor for points_awarded field.
	answereventDescPointsAwarded := answereventFields[6].Descriptor()
	// answerevent.DefaultPointsAwarded holds the default value on creation for the points_awarded field.
	answerevent.DefaultPointsAwarded = answereventDescPointsAwarded.Default.(int)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[7].Descriptor()
	// answerevent.DefaultMode holds the default value on creation for the mode field.
	answerevent.DefaultMode = answereventDescMode.Default.(string)
	badgeFields := schema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescBadgeType is the schema descriptor for badge_type field.
	badgeDescBadgeType := badgeFields[0].Descriptor()
	// badge.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badge.BadgeTypeValidator = badgeDescBadgeType.Validators[0].(func(string) error)
	// badgeDescEarnedAt is the schema descriptor for earned_at field.
	badgeDescEarnedAt := badgeFields[1].Descriptor()
	// badge.DefaultEarnedAt holds the default value on creation for the earned_at field.
	badge.DefaultEarnedAt = badgeDescEarnedAt.Default.(func() time.Time)
	// badgeDescIsNew is the schema descriptor for is_new field.
	badgeDescIsNew := badgeFields[2].Descriptor()
	// badge.DefaultIsNew holds the default value on creation for the is_new field.
	badge.DefaultIsNew = badgeDescIsNew.Default.(bool)
	dailychallengeFields := schema.DailyChallenge{}.Fields()
	_ = dailychallengeFields
	// dailychallengeDescTargetProblems is the schema descriptor for target_problems field.
	dailychallengeDescTargetProblems := dailychallengeFields[1].Descriptor()
	// dailychallenge.DefaultTargetProblems holds the default value on creation for the target_problems field.
	dailychallenge.DefaultTargetProblems = dailychallengeDescTargetProblems.Default.(int)
	// dailychallenge.TargetProblemsValidator is a validator for the "target_problems" field. It is called by the builders before save.
	dailychallenge.TargetProblemsValidator = dailychallengeDescTargetProblems.Validators[0].(func(int) error)
	// dailychallengeDescCompletedProblems is the schema descriptor for completed_problems field.
	dailychallengeDescCompletedProblems := dailychallengeFields[2].Descriptor()
	// dailychallenge.DefaultCompletedProblems holds the default value on creation for the completed_problems field.
	dailychallenge.DefaultCompletedProblems = dailychallengeDescCompletedProblems.Default.(int)
	// dailychallenge.CompletedProblemsValidator is a validator for the "completed_problems" field. It is called by the builders before save.
	dailychallenge.CompletedProblemsValidator = dailychallengeDescCompletedProblems.Validators[0].(func(int) error)
	// dailychallengeDescStreakCount is the schema descriptor for streak_count field.
	dailychallengeDescStreakCount := dailychallengeFields[3].Descriptor()
	// dailychallenge.DefaultStreakCount holds the default value on creation for the streak_count field.
	dailychallenge.DefaultStreakCount = dailychallengeDescStreakCount.Default.(int)
	// dailychallenge.StreakCountValidator is a validator for the "streak_count" field. It is called by the builders before save.
	dailychallenge.StreakCountValidator = dailychallengeDescStreakCount.Validators[0].(func(int) error)
	// dailychallengeDescCreatedAt is the schema descriptor for created_at field.
	dailychallengeDescCreatedAt := dailychallengeFields[4].Descriptor()
	// dailychallenge.DefaultCreatedAt holds the default value on creation for the created_at field.
	dailychallenge.DefaultCreatedAt = dailychallengeDescCreatedAt.Default.(func() time.Time)
	difficultquestionFields := schema.DifficultQuestion{}.Fields()
	_ = difficultquestionFields
	// difficultquestionDescIdentifier is the schema descriptor for identifier field.
	difficultquestionDescIdentifier := difficultquestionFields[0].Descriptor()
	// difficultquestion.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	difficultquestion.IdentifierValidator = difficultquestionDescIdentifier.Validators[0].(func(string) error)
	// difficultquestionDescCorrectCount is the schema descriptor for correct_count field.
	difficultquestionDescCorrectCount := difficultquestionFields[3].Descriptor()
	// difficultquestion.DefaultCorrectCount holds the default value on creation for the correct_count field.
	difficultquestion.DefaultCorrectCount = difficultquestionDescCorrectCount.Default.(int)
	// difficultquestion.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	difficultquestion.CorrectCountValidator = difficultquestionDescCorrectCount.Validators[0].(func(int) error)
	// difficultquestionDescIncorrectCount is the schema descriptor for incorrect_count field.
	difficultquestionDescIncorrectCount := difficultquestionFields[4].Descriptor()
	// difficultquestion.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	difficultquestion.DefaultIncorrectCount = difficultquestionDescIncorrectCount.Default.(int)
	// difficultquestion.IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	difficultquestion.IncorrectCountValidator = difficultquestionDescIncorrectCount.Validators[0].(func(int) error)
	// difficultquestionDescLastIncorrectAt is the schema descriptor for last_incorrect_at field.
	difficultquestionDescLastIncorrectAt := difficultquestionFields[5].Descriptor()
	// difficultquestion.DefaultLastIncorrectAt holds the default value on creation for the last_incorrect_at field.
	difficultquestion.DefaultLastIncorrectAt = difficultquestionDescLastIncorrectAt.Default.(func() time.Time)
	llmeventMixin := schema.LLMEvent{}.Mixin()
	llmeventMixinFields0 := llmeventMixin[0].Fields()
	_ = llmeventMixinFields0
	llmeventFields := schema.LLMEvent{}.Fields()
	_ = llmeventFields
	// llmeventDescTimestamp is the schema descriptor for timestamp field.
	llmeventDescTimestamp := llmeventMixinFields0[1].Descriptor()
	// llmevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmevent.DefaultTimestamp = llmeventDescTimestamp.Default.(func() time.Time)
	// llmeventDescProvider is the schema descriptor for provider field.
	llmeventDescProvider := llmeventFields[0].Descriptor()
	// llmevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmevent.ProviderValidator = llmeventDescProvider.Validators[0].(func(string) error)
	// llmeventDescModel is the schema descriptor for model field.
	llmeventDescModel := llmeventFields[1].Descriptor()
	// llmevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmevent.ModelValidator = llmeventDescModel.Validators[0].(func(string) error)
	// llmeventDescPurpose is the schema descriptor for purpose field.
	llmeventDescPurpose := llmeventFields[2].Descriptor()
	// llmevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmevent.DefaultPurpose = llmeventDescPurpose.Default.(string)
	// llmeventDescInputTokens is the schema descriptor for input_tokens field.
	llmeventDescInputTokens := llmeventFields[3].Descriptor()
	// llmevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmevent.DefaultInputTokens = llmeventDescInputTokens.Default.(int)
	// llmeventDescOutputTokens is the schema descriptor for output_tokens field.
	llmeventDescOutputTokens := llmeventFields[4].Descriptor()
	// llmevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmevent.DefaultOutputTokens = llmeventDescOutputTokens.Default.(int)
	// llmeventDescLatencyMs is the schema descriptor for latency_ms field.
	llmeventDescLatencyMs := llmeventFields[5].Descriptor()
	// llmevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmevent.DefaultLatencyMs = llmeventDescLatencyMs.Default.(int64)
	// llmeventDescSuccess is the schema descriptor for success field.
	llmeventDescSuccess := llmeventFields[6].Descriptor()
	// llmevent.DefaultSuccess holds the default value on creation for the success field.
	llmevent.DefaultSuccess = llmeventDescSuccess.Default.(bool)
	levelstateFields := schema.LevelState{}.Fields()
	_ = levelstateFields
	// levelstateDescLevel is the schema descriptor for level field.
	levelstateDescLevel := levelstateFields[0].Descriptor()
	// levelstate.DefaultLevel holds the default value on creation for the level field.
	levelstate.DefaultLevel = levelstateDescLevel.Default.(int)
	// levelstate.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	levelstate.LevelValidator = levelstateDescLevel.Validators[0].(func(int) error)
	// levelstateDescTotalExperience is the schema descriptor for total_experience field.
	levelstateDescTotalExperience := levelstateFields[1].Descriptor()
	// levelstate.DefaultTotalExperience holds the default value on creation for the total_experience field.
	levelstate.DefaultTotalExperience = levelstateDescTotalExperience.Default.(int)
	// levelstate.TotalExperienceValidator is a validator for the "total_experience" field. It is called by the builders before save.
	levelstate.TotalExperienceValidator = levelstateDescTotalExperience.Validators[0].(func(int) error)
	// levelstateDescTitle is the schema descriptor for title field.
	levelstateDescTitle := levelstateFields[2].Descriptor()
	// levelstate.DefaultTitle holds the default value on creation for the title field.
	levelstate.DefaultTitle = levelstateDescTitle.Default.(string)
	// levelstateDescCreatedAt is the schema descriptor for created_at field.
	levelstateDescCreatedAt := levelstateFields[4].Descriptor()
	// levelstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	levelstate.DefaultCreatedAt = levelstateDescCreatedAt.Default.(func() time.Time)
	// levelstateDescLastUpdated is the schema descriptor for last_updated field.
	levelstateDescLastUpdated := levelstateFields[5].Descriptor()
	// levelstate.DefaultLastUpdated holds the default value on creation for the last_updated field.
	levelstate.DefaultLastUpdated = levelstateDescLastUpdated.Default.(func() time.Time)
	// levelstate.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	levelstate.UpdateDefaultLastUpdated = levelstateDescLastUpdated.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescUUID is the schema descriptor for uuid field.
	messageDescUUID := messageFields[0].Descriptor()
	// message.DefaultUUID holds the default value on creation for the uuid field.
	message.DefaultUUID = messageDescUUID.Default.(func() uuid.UUID)
	// messageDescSender is the schema descriptor for sender field.
	messageDescSender := messageFields[1].Descriptor()
	// message.SenderValidator is a validator for the "sender" field. It is called by the builders before save.
	message.SenderValidator = messageDescSender.Validators[0].(func(string) error)
	// messageDescMsgType is the schema descriptor for msg_type field.
	messageDescMsgType := messageFields[2].Descriptor()
	// message.MsgTypeValidator is a validator for the "msg_type" field. It is called by the builders before save.
	message.MsgTypeValidator = messageDescMsgType.Validators[0].(func(string) error)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[3].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = messageDescContent.Validators[0].(func(string) error)
	// messageDescIsRead is the schema descriptor for is_read field.
	messageDescIsRead := messageFields[4].Descriptor()
	// message.DefaultIsRead holds the default value on creation for the is_read field.
	message.DefaultIsRead = messageDescIsRead.Default.(bool)
	// messageDescSentAt is the schema descriptor for sent_at field.
	messageDescSentAt := messageFields[7].Descriptor()
	// message.DefaultSentAt holds the default value on creation for the sent_at field.
	message.DefaultSentAt = messageDescSentAt.Default.(func() time.Time)
	pointeventMixin := schema.PointEvent{}.Mixin()
	pointeventMixinFields0 := pointeventMixin[0].Fields()
	_ = pointeventMixinFields0
	pointeventFields := schema.PointEvent{}.Fields()
	_ = pointeventFields
	// pointeventDescTimestamp is the schema descriptor for timestamp field.
	pointeventDescTimestamp := pointeventMixinFields0[1].Descriptor()
	// pointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointevent.DefaultTimestamp = pointeventDescTimestamp.Default.(func() time.Time)
	// pointeventDescKind is the schema descriptor for kind field.
	pointeventDescKind := pointeventFields[0].Descriptor()
	// pointevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	pointevent.KindValidator = pointeventDescKind.Validators[0].(func(string) error)
	// pointeventDescAmount is the schema descriptor for amount field.
	pointeventDescAmount := pointeventFields[1].Descriptor()
	// pointevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	pointevent.AmountValidator = pointeventDescAmount.Validators[0].(func(int) error)
	// pointeventDescBonus is the schema descriptor for bonus field.
	pointeventDescBonus := pointeventFields[3].Descriptor()
	// pointevent.DefaultBonus holds the default value on creation for the bonus field.
	pointevent.DefaultBonus = pointeventDescBonus.Default.(bool)
	pointstateFields := schema.PointState{}.Fields()
	_ = pointstateFields
	// pointstateDescTotalEarned is the schema descriptor for total_earned field.
	pointstateDescTotalEarned := pointstateFields[0].Descriptor()
	// pointstate.DefaultTotalEarned holds the default value on creation for the total_earned field.
	pointstate.DefaultTotalEarned = pointstateDescTotalEarned.Default.(int)
	// pointstate.TotalEarnedValidator is a validator for the "total_earned" field. It is called by the builders before save.
	pointstate.TotalEarnedValidator = pointstateDescTotalEarned.Validators[0].(func(int) error)
	// pointstateDescAvailable is the schema descriptor for available field.
	pointstateDescAvailable := pointstateFields[1].Descriptor()
	// pointstate.DefaultAvailable holds the default value on creation for the available field.
	pointstate.DefaultAvailable = pointstateDescAvailable.Default.(int)
	// pointstate.AvailableValidator is a validator for the "available" field. It is called by the builders before save.
	pointstate.AvailableValidator = pointstateDescAvailable.Validators[0].(func(int) error)
	// pointstateDescLastUpdated is the schema descriptor for last_updated field.
	pointstateDescLastUpdated := pointstateFields[3].Descriptor()
	// pointstate.DefaultLastUpdated holds the default value on creation for the last_updated field.
	pointstate.DefaultLastUpdated = pointstateDescLastUpdated.Default.(func() time.Time)
	// pointstate.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	pointstate.UpdateDefaultLastUpdated = pointstateDescLastUpdated.UpdateDefault.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	tablestatFields := schema.TableStat{}.Fields()
	_ = tablestatFields
	// tablestatDescTable is the schema descriptor for table field.
	tablestatDescTable := tablestatFields[0].Descriptor()
	// tablestat.TableValidator is a validator for the "table" field. It is called by the builders before save.
	tablestat.TableValidator = tablestatDescTable.Validators[0].(func(int) error)
	// tablestatDescTotalProblems is the schema descriptor for total_problems field.
	tablestatDescTotalProblems := tablestatFields[1].Descriptor()
	// tablestat.DefaultTotalProblems holds the default value on creation for the total_problems field.
	tablestat.DefaultTotalProblems = tablestatDescTotalProblems.Default.(int)
	// tablestat.TotalProblemsValidator is a validator for the "total_problems" field. It is called by the builders before save.
	tablestat.TotalProblemsValidator = tablestatDescTotalProblems.Validators[0].(func(int) error)
	// tablestatDescCorrectProblems is the schema descriptor for correct_problems field.
	tablestatDescCorrectProblems := tablestatFields[2].Descriptor()
	// tablestat.DefaultCorrectProblems holds the default value on creation for the correct_problems field.
	tablestat.DefaultCorrectProblems = tablestatDescCorrectProblems.Default.(int)
	// tablestat.CorrectProblemsValidator is a validator for the "correct_problems" field. It is called by the builders before save.
	tablestat.CorrectProblemsValidator = tablestatDescCorrectProblems.Validators[0].(func(int) error)
	// tablestatDescLastUpdated is the schema descriptor for last_updated field.
	tablestatDescLastUpdated := tablestatFields[3].Descriptor()
	// tablestat.DefaultLastUpdated holds the default value on creation for the last_updated field.
	tablestat.DefaultLastUpdated = tablestatDescLastUpdated.Default.(func() time.Time)
	// tablestat.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	tablestat.UpdateDefaultLastUpdated = tablestatDescLastUpdated.UpdateDefault.(func() time.Time)
}
