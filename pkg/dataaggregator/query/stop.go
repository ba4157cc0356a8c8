package query

// StopCatalog is the full station-level stop list.
type StopCatalog struct{}

type StopsForRoute struct {
	RouteID string
}
