package mbta

import (
	"context"
	"net/url"

	"github.com/jinzhu/copier"
	"github.com/travigo/planner/pkg/ctdf"
)

// RoutesServing returns every route with at least one trip touching the stop.
func (c *Client) RoutesServing(ctx context.Context, stopID string) ([]ctdf.Route, error) {
	params := url.Values{}
	params.Set("filter[stop]", stopID)

	var response document[RouteAttributes]
	if err := c.get(ctx, "routes serving stop", "/routes", params, &response); err != nil {
		return nil, err
	}

	routes := make([]ctdf.Route, 0, len(response.Data))

	for _, record := range response.Data {
		var route ctdf.Route
		if err := copier.Copy(&route, &record.Attributes); err != nil {
			return nil, err
		}
		route.ID = record.ID
		route.Name = ctdf.RouteName(record.Attributes.LongName, record.Attributes.ShortName)

		routes = append(routes, route)
	}

	return routes, nil
}
