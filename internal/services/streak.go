package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitgenius/backend/internal/models"
)

// DateLayout is the wire format for all log/meal/weight dates.
const DateLayout = "2006-01-02"

// streakFetchLimit bounds how much history the streak walk looks at.
const streakFetchLimit = 100

// CurrentStreak computes the user's consecutive-day workout streak from the
// most recent workout logs.
func CurrentStreak(ctx context.Context, db *mongo.Database, userID string) (int, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(streakFetchLimit)

	cur, err := db.Collection("workout_logs").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var logs []models.WorkoutLog
	if err := cur.All(ctx, &logs); err != nil {
		return 0, err
	}

	dates := make([]string, 0, len(logs))
	for _, l := range logs {
		dates = append(dates, l.Date)
	}
	return StreakFromDates(dates, time.Now()), nil
}

// StreakFromDates walks log dates sorted newest-first and counts consecutive
// days. The anchor log may fall on today or yesterday (a streak "ends at or
// adjacent to" the current date); after that each matched day must be exactly
// one day earlier. Several logs on the same date count as a single day. The
// first gap, or an unparseable date, terminates the walk.
func StreakFromDates(dates []string, today time.Time) int {
	streak := 0
	expected := today
	lastMatched := ""

	for _, d := range dates {
		if d == lastMatched {
			continue
		}
		logDay, err := time.Parse(DateLayout, d)
		if err != nil {
			break
		}
		matched := d == expected.Format(DateLayout) ||
			(streak == 0 && d == expected.AddDate(0, 0, -1).Format(DateLayout))
		if !matched {
			break
		}
		streak++
		lastMatched = d
		expected = logDay.AddDate(0, 0, -1)
	}
	return streak
}
