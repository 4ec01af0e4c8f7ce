package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownActivity = errors.New("unknown activity")

// Activity is something a reader does that earns points.
type Activity string

const (
	ActivityArticleRead                 Activity = "article_read"
	ActivityLocalArticleRead            Activity = "local_article_read"
	ActivityArticleShared               Activity = "article_shared"
	ActivityQuizCompleted               Activity = "quiz_completed"
	ActivityQuizPerfectScore            Activity = "quiz_perfect_score"
	ActivityCitizenReportSubmitted      Activity = "citizen_report_submitted"
	ActivityCitizenReportVerified       Activity = "citizen_report_verified"
	ActivityReportVerificationCompleted Activity = "report_verification_completed"
	ActivityDailyStreak                 Activity = "daily_streak"
	ActivityWeeklyStreak                Activity = "weekly_streak"
	ActivityCommentPosted               Activity = "comment_posted"
	ActivityHelpfulComment              Activity = "helpful_comment"
	ActivityTranslationUsed             Activity = "translation_used"
	ActivityOfflineReading              Activity = "offline_reading"
)

var activityPoints = map[Activity]int64{
	ActivityArticleRead:                 2,
	ActivityLocalArticleRead:            3,
	ActivityArticleShared:               5,
	ActivityQuizCompleted:               10,
	ActivityQuizPerfectScore:            25,
	ActivityCitizenReportSubmitted:      50,
	ActivityCitizenReportVerified:       100,
	ActivityReportVerificationCompleted: 15,
	ActivityDailyStreak:                 10,
	ActivityWeeklyStreak:                50,
	ActivityCommentPosted:               3,
	ActivityHelpfulComment:              10,
	ActivityTranslationUsed:             5,
	ActivityOfflineReading:              1,
}

// PointsForActivity returns the points an activity is worth.
func PointsForActivity(activity Activity) (int64, error) {
	points, ok := activityPoints[activity]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, activity)
	}
	return points, nil
}

// LevelUpBonus is the number of extra points granted on reaching level.
func LevelUpBonus(level int) int64 {
	return int64(level) * 50
}

// PointsAward describes the outcome of crediting an activity.
type PointsAward struct {
	Activity    Activity `json:"activity"`
	Points      int64    `json:"points"`
	Bonus       int64    `json:"bonus"`
	TotalPoints int64    `json:"total_points"`
	LeveledUp   bool     `json:"leveled_up"`
	Level       Level    `json:"level"`
}
