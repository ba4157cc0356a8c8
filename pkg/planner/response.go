package planner

import (
	"github.com/liip/sheriff"
	"github.com/travigo/planner/pkg/ctdf"
)

const (
	ViewBasic    = "basic"
	ViewDetailed = "detailed"
)

// Response is the JSON shape shared by the HTTP, agent and queue surfaces.
type Response struct {
	OK bool `json:"ok" groups:"basic"`

	Origin      *ctdf.Stop `json:"origin,omitempty" groups:"basic"`
	Destination *ctdf.Stop `json:"destination,omitempty" groups:"basic"`

	Routes    []ctdf.Route       `json:"routes,omitempty" groups:"basic"`
	Transfer  *ctdf.TransferPlan `json:"transfer,omitempty" groups:"basic"`
	Transfers *int               `json:"transfers" groups:"basic"`

	Text  string `json:"text" groups:"basic"`
	Error string `json:"error,omitempty" groups:"basic"`

	UpstreamErrors int `json:"upstream_errors,omitempty" groups:"detailed"`
}

func NewResponse(result *ctdf.PlanResult) *Response {
	return &Response{
		OK:             result.OK(),
		Origin:         result.Origin,
		Destination:    result.Destination,
		Routes:         result.Routes,
		Transfer:       result.Transfer,
		Transfers:      result.TransferCount(),
		Text:           Text(result),
		Error:          ErrorMessage(result),
		UpstreamErrors: result.UpstreamErrors,
	}
}

// Reduce trims the response to the fields of the requested view. Unknown
// views are treated as detailed.
func (r *Response) Reduce(view string) (interface{}, error) {
	groups := []string{ViewBasic, ViewDetailed}
	if view == ViewBasic {
		groups = []string{ViewBasic}
	}

	return sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, r)
}
