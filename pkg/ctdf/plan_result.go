package ctdf

type PlanOutcome string

const (
	PlanOutcomeDirect            PlanOutcome = "direct"
	PlanOutcomeTransfer          PlanOutcome = "transfer"
	PlanOutcomeNoRoute           PlanOutcome = "no_route"
	PlanOutcomeResolutionFailure PlanOutcome = "resolution_failure"
	PlanOutcomeUpstreamFailure   PlanOutcome = "upstream_failure"
	PlanOutcomeUnexpectedFailure PlanOutcome = "unexpected_failure"
)

type ResolutionSide string

const (
	ResolutionSideOrigin      ResolutionSide = "origin"
	ResolutionSideDestination ResolutionSide = "destination"
)

// PlanResult is the outcome of a single planning call. Exactly one outcome is
// populated; the fields relevant to other outcomes stay zero.
type PlanResult struct {
	Outcome PlanOutcome

	Origin      *Stop
	Destination *Stop

	Routes   []Route
	Transfer *TransferPlan

	Unresolved     ResolutionSide
	UnresolvedName string

	Cause error

	// Number of route/stop lookups that failed upstream and were treated as
	// empty while searching. Non-zero means a NoRoute answer may be wrong.
	UpstreamErrors int
}

func NewDirectRoutesResult(origin *Stop, destination *Stop, routes []Route) *PlanResult {
	return &PlanResult{
		Outcome:     PlanOutcomeDirect,
		Origin:      origin,
		Destination: destination,
		Routes:      routes,
	}
}

func NewTransferResult(origin *Stop, destination *Stop, transfer *TransferPlan) *PlanResult {
	return &PlanResult{
		Outcome:     PlanOutcomeTransfer,
		Origin:      origin,
		Destination: destination,
		Transfer:    transfer,
	}
}

func NewNoRouteResult(origin *Stop, destination *Stop) *PlanResult {
	return &PlanResult{
		Outcome:     PlanOutcomeNoRoute,
		Origin:      origin,
		Destination: destination,
		Routes:      []Route{},
	}
}

func NewResolutionFailureResult(side ResolutionSide, name string) *PlanResult {
	return &PlanResult{
		Outcome:        PlanOutcomeResolutionFailure,
		Unresolved:     side,
		UnresolvedName: name,
	}
}

func NewUpstreamFailureResult(cause error) *PlanResult {
	return &PlanResult{
		Outcome: PlanOutcomeUpstreamFailure,
		Cause:   cause,
	}
}

func NewUnexpectedFailureResult(cause error) *PlanResult {
	return &PlanResult{
		Outcome: PlanOutcomeUnexpectedFailure,
		Cause:   cause,
	}
}

// OK reports whether planning completed. NoRoute is a completed plan.
func (p *PlanResult) OK() bool {
	switch p.Outcome {
	case PlanOutcomeDirect, PlanOutcomeTransfer, PlanOutcomeNoRoute:
		return true
	default:
		return false
	}
}

// TransferCount is 0 for direct, 1 for a single transfer and nil otherwise.
func (p *PlanResult) TransferCount() *int {
	var count int

	switch p.Outcome {
	case PlanOutcomeDirect:
		count = 0
	case PlanOutcomeTransfer:
		count = 1
	default:
		return nil
	}

	return &count
}
