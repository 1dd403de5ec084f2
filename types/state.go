package types

// DeploymentState is the state of one app deployment or instance
type DeploymentState int

// states
const (
	StateUnknown DeploymentState = iota
	StateDeploying
	StateDeployed
	StatePartial
	StateFailed
	StateError
	StateUndeployed
)

var stateNames = map[DeploymentState]string{
	StateUnknown:    "unknown",
	StateDeploying:  "deploying",
	StateDeployed:   "deployed",
	StatePartial:    "partial",
	StateFailed:     "failed",
	StateError:      "error",
	StateUndeployed: "undeployed",
}

func (s DeploymentState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return stateNames[StateUnknown]
}

// AggregateState folds instance states into one app level state: any
// error wins, any instance still coming up means deploying, a mix of
// deployed and failed is partial
func AggregateState(states []DeploymentState) DeploymentState {
	if len(states) == 0 {
		return StateUnknown
	}

	counts := map[DeploymentState]int{}
	for _, s := range states {
		counts[s]++
	}

	switch {
	case counts[StateError] > 0:
		return StateError
	case counts[StateDeploying] > 0:
		return StateDeploying
	case counts[StateDeployed] == len(states):
		return StateDeployed
	case counts[StateFailed] == len(states):
		return StateFailed
	case counts[StateDeployed] > 0 && counts[StateFailed] > 0:
		return StatePartial
	case counts[StateUndeployed] == len(states):
		return StateUndeployed
	default:
		return StateUnknown
	}
}
