package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/planner/pkg/ctdf"
)

func TestMatchStop(t *testing.T) {
	stops := []ctdf.Stop{
		{ID: "place-sstat", Name: "South Station"},
		{ID: "place-state", Name: "State"},
		{ID: "place-bbsta", Name: "Back Bay"},
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "first substring match wins", query: "Stat", want: "place-sstat"},
		{name: "case insensitive", query: "BACK bay", want: "place-bbsta"},
		{name: "surrounding whitespace", query: "  back  ", want: "place-bbsta"},
		{name: "exact name after earlier partial", query: "state", want: "place-state"},
		{name: "no match", query: "Alewife", want: ""},
		{name: "empty query", query: "", want: ""},
		{name: "whitespace query", query: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop := MatchStop(stops, tt.query)
			if tt.want == "" {
				assert.Nil(t, stop)
				return
			}

			require.NotNil(t, stop)
			assert.Equal(t, tt.want, stop.ID)
		})
	}
}

func TestResolveStop(t *testing.T) {
	p := New(newFakeGateway(), 1)

	stop, err := p.ResolveStop(context.Background(), "downtown")
	require.NoError(t, err)
	assert.Equal(t, "place-dwnxg", stop.ID)
	assert.Equal(t, "Downtown Crossing", stop.Name)

	_, err = p.ResolveStop(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ErrStopNotFound)
}

func TestResolveStopCatalogError(t *testing.T) {
	gateway := newFakeGateway()
	gateway.stopsErr = errUpstream

	_, err := New(gateway, 1).ResolveStop(context.Background(), "Harvard")

	assert.ErrorIs(t, err, errUpstream)
	assert.NotErrorIs(t, err, ErrStopNotFound)
}
