package game

const (
	InitialHealth    = 200.0
	ChargeStep       = 9
	CommitThreshold  = 60   // strictly greater commits
	OtherPenalty     = 0.25 // per tick without a committed weapon
	LossPenalty      = 1.0
	FingerRestLength = 10.0
	FingerGrowth     = 9.0
	FingerMaxLength  = 40.0
	FingerSpreadDeg  = 30.0
	HandRadius       = 10.0
	HealthBarOffsetY = 80.0
	HealthBarHeight  = 20.0
	DefaultWidth     = 640.0
	DefaultHeight    = 360.0
)
