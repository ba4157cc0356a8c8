package planner

import (
	"fmt"
	"strings"

	"github.com/travigo/planner/pkg/ctdf"
)

// Text is the human readable answer for a plan result.
func Text(result *ctdf.PlanResult) string {
	switch result.Outcome {
	case ctdf.PlanOutcomeDirect:
		if len(result.Routes) == 1 {
			return fmt.Sprintf("Take the %s from %s to %s.", result.Routes[0].Name, result.Origin.Name, result.Destination.Name)
		}

		var text strings.Builder
		fmt.Fprintf(&text, "Multiple direct options from %s to %s:\n", result.Origin.Name, result.Destination.Name)
		for i, route := range result.Routes {
			fmt.Fprintf(&text, "\n%d. %s", i+1, route.Name)
		}

		return text.String()
	case ctdf.PlanOutcomeTransfer:
		return fmt.Sprintf(
			"Take the %s from %s to %s, then transfer to the %s to %s.",
			result.Transfer.OriginRoute.Name,
			result.Origin.Name,
			result.Transfer.TransferStop.Name,
			result.Transfer.DestinationRoute.Name,
			result.Destination.Name,
		)
	case ctdf.PlanOutcomeNoRoute:
		return fmt.Sprintf(
			"No route found between %s and %s. You may need multiple transfers — consider checking the MBTA Trip Planner at mbta.com.",
			result.Origin.Name,
			result.Destination.Name,
		)
	case ctdf.PlanOutcomeResolutionFailure:
		return fmt.Sprintf("Sorry, I couldn't find a stop matching '%s'. Please check the name and try again.", result.UnresolvedName)
	case ctdf.PlanOutcomeUpstreamFailure:
		return "Sorry, I couldn't plan your route at this time. Please try again later."
	default:
		return "An unexpected error occurred while planning your route."
	}
}

// ErrorMessage is the short machine-facing error for failed results and empty
// for completed ones. Unexpected failures never expose their cause.
func ErrorMessage(result *ctdf.PlanResult) string {
	switch result.Outcome {
	case ctdf.PlanOutcomeResolutionFailure:
		return fmt.Sprintf("Could not find %s stop: %s", result.Unresolved, result.UnresolvedName)
	case ctdf.PlanOutcomeUpstreamFailure:
		if result.Cause != nil {
			return result.Cause.Error()
		}
		return "upstream failure"
	case ctdf.PlanOutcomeUnexpectedFailure:
		return "unexpected error"
	default:
		return ""
	}
}
