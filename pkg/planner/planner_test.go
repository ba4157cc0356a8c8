package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/planner/pkg/ctdf"
)

func routeIDs(routes []ctdf.Route) []string {
	ids := make([]string, 0, len(routes))
	for _, route := range routes {
		ids = append(ids, route.ID)
	}

	return ids
}

func TestPlanDirectRoute(t *testing.T) {
	gateway := newFakeGateway()
	result := New(gateway, 1).Plan(context.Background(), "Harvard", "Kenmore")

	require.Equal(t, ctdf.PlanOutcomeDirect, result.Outcome)
	assert.True(t, result.OK())
	assert.Equal(t, "place-harsq", result.Origin.ID)
	assert.Equal(t, "place-kencl", result.Destination.ID)
	assert.Equal(t, []string{"Shuttle"}, routeIDs(result.Routes))

	require.NotNil(t, result.TransferCount())
	assert.Equal(t, 0, *result.TransferCount())
	assert.Equal(t, "Take the Harvard - Kenmore Shuttle from Harvard to Kenmore.", Text(result))
	assert.Empty(t, ErrorMessage(result))
}

func TestPlanDirectRouteSkipsTransferSearch(t *testing.T) {
	gateway := newFakeGateway()
	result := New(gateway, 4).Plan(context.Background(), "Harvard", "Kenmore")

	require.Equal(t, ctdf.PlanOutcomeDirect, result.Outcome)
	assert.Zero(t, gateway.stopsOnCallCount())
	assert.Len(t, gateway.routesServingCalls, 2)
}

func TestPlanMultipleDirectRoutes(t *testing.T) {
	result := New(newFakeGateway(), 1).Plan(context.Background(), "park street", "KENMORE")

	require.Equal(t, ctdf.PlanOutcomeDirect, result.Outcome)
	assert.Equal(t, []string{"Green-B", "Green-C"}, routeIDs(result.Routes))
	assert.Equal(t,
		"Multiple direct options from Park Street to Kenmore:\n\n1. Green Line B\n2. Green Line C",
		Text(result),
	)
}

func TestPlanOneTransfer(t *testing.T) {
	result := New(newFakeGateway(), 1).Plan(context.Background(), "Wonderland", "Forest Hills")

	require.Equal(t, ctdf.PlanOutcomeTransfer, result.Outcome)
	assert.True(t, result.OK())
	require.NotNil(t, result.TransferCount())
	assert.Equal(t, 1, *result.TransferCount())

	assert.Equal(t, &ctdf.TransferPlan{
		OriginRoute:      ctdf.RouteReference{ID: "Blue", Name: "Blue Line"},
		TransferStop:     ctdf.StopReference{ID: "place-state", Name: "State"},
		DestinationRoute: ctdf.RouteReference{ID: "Orange", Name: "Orange Line"},
	}, result.Transfer)

	text := Text(result)
	assert.Contains(t, text, "then transfer to")
	assert.Equal(t, "Take the Blue Line from Wonderland to State, then transfer to the Orange Line to Forest Hills.", text)
}

func TestPlanTransferPlanIsConsistent(t *testing.T) {
	gateway := newFakeGateway()
	result := New(gateway, 1).Plan(context.Background(), "Kenmore", "Wonderland")

	require.Equal(t, ctdf.PlanOutcomeTransfer, result.Outcome)
	plan := result.Transfer

	originRoutes, _ := gateway.RoutesServing(context.Background(), result.Origin.ID)
	assert.Contains(t, routeIDs(originRoutes), plan.OriginRoute.ID)

	destinationRoutes, _ := gateway.RoutesServing(context.Background(), result.Destination.ID)
	assert.Contains(t, routeIDs(destinationRoutes), plan.DestinationRoute.ID)

	transferRoutes, _ := gateway.RoutesServing(context.Background(), plan.TransferStop.ID)
	assert.Contains(t, routeIDs(transferRoutes), plan.OriginRoute.ID)
	assert.Contains(t, routeIDs(transferRoutes), plan.DestinationRoute.ID)

	assert.Equal(t, "Green-B", plan.OriginRoute.ID)
	assert.Equal(t, "place-gover", plan.TransferStop.ID)
	assert.Equal(t, "Blue", plan.DestinationRoute.ID)
}

func TestPlanNoRoute(t *testing.T) {
	result := New(newFakeGateway(), 1).Plan(context.Background(), "Charlestown", "Forest Hills")

	require.Equal(t, ctdf.PlanOutcomeNoRoute, result.Outcome)
	assert.True(t, result.OK())
	assert.Nil(t, result.TransferCount())
	assert.Nil(t, result.Transfer)
	assert.Empty(t, result.Routes)
	assert.Zero(t, result.UpstreamErrors)
	assert.Equal(t,
		"No route found between Charlestown Navy Yard and Forest Hills. You may need multiple transfers — consider checking the MBTA Trip Planner at mbta.com.",
		Text(result),
	)
}

func TestPlanUnknownOrigin(t *testing.T) {
	gateway := newFakeGateway()
	result := New(gateway, 1).Plan(context.Background(), "Narnia", "Kenmore")

	require.Equal(t, ctdf.PlanOutcomeResolutionFailure, result.Outcome)
	assert.False(t, result.OK())
	assert.Equal(t, ctdf.ResolutionSideOrigin, result.Unresolved)
	assert.Equal(t, "Narnia", result.UnresolvedName)
	assert.Contains(t, Text(result), "Narnia")
	assert.Equal(t, "Could not find origin stop: Narnia", ErrorMessage(result))
	assert.Empty(t, gateway.routesServingCalls)
}

func TestPlanUnknownDestination(t *testing.T) {
	result := New(newFakeGateway(), 1).Plan(context.Background(), "Harvard", "Atlantis")

	require.Equal(t, ctdf.PlanOutcomeResolutionFailure, result.Outcome)
	assert.Equal(t, ctdf.ResolutionSideDestination, result.Unresolved)
	assert.Equal(t, "Sorry, I couldn't find a stop matching 'Atlantis'. Please check the name and try again.", Text(result))
	assert.Equal(t, "Could not find destination stop: Atlantis", ErrorMessage(result))
}

func TestPlanCatalogFailure(t *testing.T) {
	gateway := newFakeGateway()
	gateway.stopsErr = errUpstream

	result := New(gateway, 1).Plan(context.Background(), "Harvard", "Kenmore")

	require.Equal(t, ctdf.PlanOutcomeUpstreamFailure, result.Outcome)
	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Cause, errUpstream)
	assert.Nil(t, result.TransferCount())
	assert.Equal(t, "Sorry, I couldn't plan your route at this time. Please try again later.", Text(result))
}

func TestPlanCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := New(newFakeGateway(), 1).Plan(ctx, "Harvard", "Kenmore")

	require.Equal(t, ctdf.PlanOutcomeUpstreamFailure, result.Outcome)
	assert.ErrorIs(t, result.Cause, context.Canceled)
}

type cancellingGateway struct {
	*fakeGateway
	cancel context.CancelFunc
}

func (g cancellingGateway) StopsOn(ctx context.Context, routeID string) ([]ctdf.Stop, error) {
	g.cancel()
	return g.fakeGateway.StopsOn(ctx, routeID)
}

func TestPlanCancelledDuringTransferSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := cancellingGateway{fakeGateway: newFakeGateway(), cancel: cancel}
	result := New(gateway, 1).Plan(ctx, "Kenmore", "Wonderland")

	require.Equal(t, ctdf.PlanOutcomeUpstreamFailure, result.Outcome)
	assert.ErrorIs(t, result.Cause, context.Canceled)
}

func TestPlanRecoversPanic(t *testing.T) {
	gateway := newFakeGateway()
	gateway.panicOnStopID = "place-kencl"

	result := New(gateway, 1).Plan(context.Background(), "Harvard", "Kenmore")

	require.Equal(t, ctdf.PlanOutcomeUnexpectedFailure, result.Outcome)
	assert.False(t, result.OK())
	assert.Error(t, result.Cause)
	assert.Equal(t, "An unexpected error occurred while planning your route.", Text(result))
	assert.Equal(t, "unexpected error", ErrorMessage(result))
}

func TestPlanRecoversPanicInConcurrentSearch(t *testing.T) {
	gateway := newFakeGateway()
	gateway.panicOnStopID = "place-aqucl"

	result := New(gateway, 4).Plan(context.Background(), "Wonderland", "Forest Hills")

	assert.Equal(t, ctdf.PlanOutcomeUnexpectedFailure, result.Outcome)
}

func TestPlanCountsSuppressedLookups(t *testing.T) {
	gateway := newFakeGateway()
	gateway.routesErr["place-state"] = errUpstream

	result := New(gateway, 1).Plan(context.Background(), "Wonderland", "Forest Hills")

	require.Equal(t, ctdf.PlanOutcomeNoRoute, result.Outcome)
	assert.Equal(t, 1, result.UpstreamErrors)
}

func TestPlanStopsOnFailureFallsThroughToNextRoute(t *testing.T) {
	gateway := newFakeGateway()
	gateway.stopsOnErr["Green-B"] = errUpstream

	result := New(gateway, 1).Plan(context.Background(), "Kenmore", "Wonderland")

	require.Equal(t, ctdf.PlanOutcomeTransfer, result.Outcome)
	assert.Equal(t, "Green-C", result.Transfer.OriginRoute.ID)
	assert.Equal(t, 1, result.UpstreamErrors)
}

func TestDirectRoutesIsSymmetric(t *testing.T) {
	p := New(newFakeGateway(), 1)
	ctx := context.Background()

	pairs := [][2]string{
		{"place-pktrm", "place-kencl"},
		{"place-harsq", "place-kencl"},
		{"place-wondl", "place-forhl"},
		{"place-dwnxg", "place-state"},
	}

	for _, pair := range pairs {
		forward := p.DirectRoutes(ctx, pair[0], pair[1])
		backward := p.DirectRoutes(ctx, pair[1], pair[0])

		assert.ElementsMatch(t, routeIDs(forward), routeIDs(backward), "%s <-> %s", pair[0], pair[1])
	}
}

func TestDirectRoutesKeepsOriginOrder(t *testing.T) {
	routes := New(newFakeGateway(), 1).DirectRoutes(context.Background(), "place-pktrm", "place-gover")

	assert.Equal(t, []string{"Green-B", "Green-C"}, routeIDs(routes))
}

func TestTransferCandidatesOrder(t *testing.T) {
	p := New(newFakeGateway(), 1)

	var candidates []TransferCandidate
	for candidate := range p.TransferCandidates(context.Background(), "place-kencl", "place-wondl") {
		candidates = append(candidates, candidate)
	}

	require.Len(t, candidates, 2)
	assert.Equal(t, "Green-B", candidates[0].OriginRoute.ID)
	assert.Equal(t, "place-gover", candidates[0].Stop.ID)
	assert.Equal(t, "Green-C", candidates[1].OriginRoute.ID)
	assert.Equal(t, "place-gover", candidates[1].Stop.ID)
	assert.Equal(t, []string{"Blue"}, routeIDs(candidates[1].ConnectingRoutes))
}

func TestTransferCandidatesStopEarly(t *testing.T) {
	gateway := newFakeGateway()
	p := New(gateway, 1)

	for range p.TransferCandidates(context.Background(), "place-kencl", "place-wondl") {
		break
	}

	assert.Equal(t, []string{"Green-B"}, gateway.stopsOnCalls)
}

func TestFindTransferPicksFirstConnectingRoute(t *testing.T) {
	plan := New(newFakeGateway(), 1).FindTransfer(context.Background(), "place-wondl", "place-pktrm")

	require.NotNil(t, plan)
	assert.Equal(t, "Blue", plan.OriginRoute.ID)
	assert.Equal(t, "place-gover", plan.TransferStop.ID)
	assert.Equal(t, "Green-B", plan.DestinationRoute.ID)
	assert.Equal(t, "Green Line B", plan.DestinationRoute.Name)
}

func TestFindTransferNone(t *testing.T) {
	plan := New(newFakeGateway(), 1).FindTransfer(context.Background(), "Boat-Charlestown", "place-forhl")

	assert.Nil(t, plan)
}

func TestConcurrentSearchMatchesSequential(t *testing.T) {
	pairs := [][2]string{
		{"Wonderland", "Forest Hills"},
		{"Kenmore", "Wonderland"},
		{"Wonderland", "Park Street"},
		{"Oak Grove", "Kenmore"},
		{"Charlestown", "Harvard"},
	}

	for _, pair := range pairs {
		sequential := New(newFakeGateway(), 1).Plan(context.Background(), pair[0], pair[1])
		concurrent := New(newFakeGateway(), 8).Plan(context.Background(), pair[0], pair[1])

		assert.Equal(t, sequential.Outcome, concurrent.Outcome, "%s -> %s", pair[0], pair[1])
		assert.Equal(t, sequential.Transfer, concurrent.Transfer, "%s -> %s", pair[0], pair[1])
		assert.Equal(t, Text(sequential), Text(concurrent))
	}
}

func TestNewClampsConcurrency(t *testing.T) {
	assert.Equal(t, 1, New(newFakeGateway(), 0).TransferConcurrency)
	assert.Equal(t, 1, New(newFakeGateway(), -3).TransferConcurrency)
	assert.Equal(t, 6, New(newFakeGateway(), 6).TransferConcurrency)
}

func TestUpstreamErrorMessageCarriesCause(t *testing.T) {
	result := ctdf.NewUpstreamFailureResult(errors.New("mbta stops: status 503"))

	assert.Equal(t, "mbta stops: status 503", ErrorMessage(result))
}
