package mbta

// JSON:API envelope returned by every V3 endpoint.
type document[T any] struct {
	Data []resource[T] `json:"data"`
}

type resource[T any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

type StopAttributes struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationType int     `json:"location_type"`
	Municipality string  `json:"municipality"`
}

type RouteAttributes struct {
	LongName    string `json:"long_name"`
	ShortName   string `json:"short_name"`
	Type        int    `json:"type"`
	Color       string `json:"color"`
	TextColor   string `json:"text_color"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}
