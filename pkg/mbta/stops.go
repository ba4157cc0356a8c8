package mbta

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/travigo/planner/pkg/ctdf"
)

// Stops returns the station-level stop catalog, up to PageLimit records, in
// the order the API returns them.
func (c *Client) Stops(ctx context.Context) ([]ctdf.Stop, error) {
	params := url.Values{}
	params.Set("filter[location_type]", LocationTypeStation)
	params.Set("page[limit]", strconv.Itoa(c.pageLimit()))

	var response document[StopAttributes]
	if err := c.get(ctx, "stops", "/stops", params, &response); err != nil {
		return nil, err
	}

	return convertStops(response.Data)
}

// StopsOn returns the station-level stops served by a route.
func (c *Client) StopsOn(ctx context.Context, routeID string) ([]ctdf.Stop, error) {
	params := url.Values{}
	params.Set("filter[route]", routeID)
	params.Set("filter[location_type]", LocationTypeStation)

	var response document[StopAttributes]
	if err := c.get(ctx, "stops on route", "/stops", params, &response); err != nil {
		return nil, err
	}

	return convertStops(response.Data)
}

func (c *Client) pageLimit() int {
	if c.PageLimit <= 0 {
		return DefaultPageLimit
	}

	return c.PageLimit
}

func convertStops(records []resource[StopAttributes]) ([]ctdf.Stop, error) {
	stops := make([]ctdf.Stop, 0, len(records))

	for _, record := range records {
		var stop ctdf.Stop
		if err := copier.Copy(&stop, &record.Attributes); err != nil {
			return nil, err
		}
		stop.ID = record.ID

		stops = append(stops, stop)
	}

	return stops, nil
}
