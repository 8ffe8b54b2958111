package domain

type GoalID int64

type GoalCycle string

const (
	CycleDaily   GoalCycle = "daily"
	CycleWeekly  GoalCycle = "weekly"
	CycleMonthly GoalCycle = "monthly"
	CycleYearly  GoalCycle = "yearly"
)

func (c GoalCycle) Valid() bool {
	switch c {
	case CycleDaily, CycleWeekly, CycleMonthly, CycleYearly:
		return true
	default:
		return false
	}
}

// Goal is a per-account spending limit evaluated by the backend.
type Goal struct {
	ID            GoalID
	BankAccountID AccountID
	Purpose       string
	LimitAmount   int64
	Cycle         GoalCycle
	Spent         int64
	BankName      string
	MaskedAccount string
}

type GoalSpec struct {
	Purpose     string
	LimitAmount int64
	Cycle       GoalCycle
}

// GoalAlert is raised by the backend when spending approaches or exceeds a
// goal's limit within its cycle.
type GoalAlert struct {
	GoalID        GoalID
	BankAccountID AccountID
	Purpose       string
	Message       string
	Level         string
	Ratio         float64
}
