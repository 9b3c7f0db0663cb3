package story

import "time"

const (
	BaseReward      = 10
	SecondsPerPoint = 5
	PointsPerSpared = 3
)

// Reward is the points earned for winning a level: a base amount, one point
// per five whole seconds left, and three per life of the level's budget that
// was not lost.
func Reward(l Level, remaining time.Duration, livesLost int) int {
	spared := max(0, l.Lives-livesLost)
	seconds := max(0, int(remaining/time.Second))
	return BaseReward + seconds/SecondsPerPoint + PointsPerSpared*spared
}
