package ctdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanResultTransferCount(t *testing.T) {
	origin := &Stop{ID: "place-harsq", Name: "Harvard"}
	destination := &Stop{ID: "place-kencl", Name: "Kenmore"}

	direct := NewDirectRoutesResult(origin, destination, []Route{{ID: "Red", Name: "Red Line"}})
	require.NotNil(t, direct.TransferCount())
	assert.Equal(t, 0, *direct.TransferCount())
	assert.True(t, direct.OK())

	transfer := NewTransferResult(origin, destination, &TransferPlan{})
	require.NotNil(t, transfer.TransferCount())
	assert.Equal(t, 1, *transfer.TransferCount())
	assert.True(t, transfer.OK())

	none := NewNoRouteResult(origin, destination)
	assert.Nil(t, none.TransferCount())
	assert.True(t, none.OK())
	assert.NotNil(t, none.Routes)
	assert.Empty(t, none.Routes)
}

func TestPlanResultFailures(t *testing.T) {
	unresolved := NewResolutionFailureResult(ResolutionSideDestination, "Atlantis")
	assert.False(t, unresolved.OK())
	assert.Nil(t, unresolved.TransferCount())
	assert.Nil(t, unresolved.Origin)

	cause := errors.New("timeout")
	upstream := NewUpstreamFailureResult(cause)
	assert.False(t, upstream.OK())
	assert.Equal(t, cause, upstream.Cause)

	unexpected := NewUnexpectedFailureResult(cause)
	assert.False(t, unexpected.OK())
	assert.Equal(t, PlanOutcomeUnexpectedFailure, unexpected.Outcome)
}

func TestRouteName(t *testing.T) {
	assert.Equal(t, "Red Line", RouteName("Red Line", "Red"))
	assert.Equal(t, "39", RouteName("", "39"))
	assert.Equal(t, UnknownRouteName, RouteName("", ""))
}

func TestRouteTypeTransportType(t *testing.T) {
	assert.Equal(t, TransportTypeMetro, RouteTypeSubway.TransportType())
	assert.Equal(t, TransportTypeBus, RouteTypeBus.TransportType())
	assert.Equal(t, TransportTypeBoat, RouteTypeFerry.TransportType())
}
