package ctdf

type TransportType string

const (
	TransportTypeBus      TransportType = "Bus"
	TransportTypeTram     TransportType = "Tram"
	TransportTypeTrain    TransportType = "Train"
	TransportTypeMetro    TransportType = "Metro"
	TransportTypeBoat     TransportType = "Boat"
	TransportTypeCableCar TransportType = "CableCar"
	TransportTypeUnknown  TransportType = "UNKNOWN"
)

// RouteType is the provider's integer mode code (GTFS route_type).
type RouteType int

const (
	RouteTypeLightRail RouteType = 0
	RouteTypeSubway    RouteType = 1
	RouteTypeRail      RouteType = 2
	RouteTypeBus       RouteType = 3
	RouteTypeFerry     RouteType = 4
	RouteTypeCableTram RouteType = 5
)

func (r RouteType) TransportType() TransportType {
	switch r {
	case RouteTypeLightRail, RouteTypeCableTram:
		return TransportTypeTram
	case RouteTypeSubway:
		return TransportTypeMetro
	case RouteTypeRail:
		return TransportTypeTrain
	case RouteTypeBus:
		return TransportTypeBus
	case RouteTypeFerry:
		return TransportTypeBoat
	default:
		return TransportTypeUnknown
	}
}
