package query

type RoutesForStop struct {
	StopID string
}
