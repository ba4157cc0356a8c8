package ctdf

const UnknownRouteName = "Unknown"

type Route struct {
	ID   string    `json:"id" groups:"basic"`
	Name string    `json:"name" groups:"basic"`
	Type RouteType `json:"type" groups:"basic"`

	Color       string `json:"color,omitempty" groups:"detailed"`
	Description string `json:"description,omitempty" groups:"detailed"`
}

func (r *Route) Reference() RouteReference {
	return RouteReference{
		ID:   r.ID,
		Name: r.Name,
	}
}

type RouteReference struct {
	ID   string `json:"id" groups:"basic"`
	Name string `json:"name" groups:"basic"`
}

// RouteName picks the display name for a route the way the provider expects:
// long name, then short name, then UnknownRouteName.
func RouteName(longName string, shortName string) string {
	if longName != "" {
		return longName
	}
	if shortName != "" {
		return shortName
	}

	return UnknownRouteName
}
