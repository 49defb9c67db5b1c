package apidoc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/apidoc"
)

type deprecatedItem struct{}

func TestRouteOptions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts          []apidoc.RouteOption
		wantMetadata  []any
		wantResponses []apidoc.ResponseShape
		wantResource  string
		wantGroup     string
	}{
		"no options": {},
		"metadata in option order": {
			opts: []apidoc.RouteOption{
				apidoc.WithSummary("first"),
				apidoc.WithName("createUser"),
				apidoc.WithSummary("second"),
			},
			wantMetadata: []any{
				apidoc.SummaryItem{Text: "first"},
				apidoc.NameItem{Name: "createUser"},
				apidoc.SummaryItem{Text: "second"},
			},
		},
		"custom metadata": {
			opts: []apidoc.RouteOption{
				apidoc.WithMetadata(deprecatedItem{}, apidoc.DescriptionItem{Text: "d"}),
			},
			wantMetadata: []any{deprecatedItem{}, apidoc.DescriptionItem{Text: "d"}},
		},
		"responses": {
			opts: []apidoc.RouteOption{
				apidoc.WithResponse(http.StatusNoContent),
				apidoc.WithDefaultResponse("application/json"),
			},
			wantResponses: []apidoc.ResponseShape{
				{StatusCode: http.StatusNoContent},
				{IsDefault: true, MediaTypes: []string{"application/json"}},
			},
		},
		"resource and group": {
			opts: []apidoc.RouteOption{
				apidoc.WithResource("Orders"),
				apidoc.WithGroupName("v2"),
			},
			wantResource: "Orders",
			wantGroup:    "v2",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := apidoc.New()
			apidoc.Put(r, "/orders/{id}", okHandler, tc.opts...)

			eps := r.Endpoints()
			require.Len(t, eps, 1)
			assert.Equal(t, http.MethodPut, eps[0].Method)
			assert.Equal(t, tc.wantMetadata, eps[0].Metadata)
			assert.Equal(t, tc.wantResponses, eps[0].Responses)
			assert.Equal(t, tc.wantResource, eps[0].Resource)
			assert.Equal(t, tc.wantGroup, eps[0].GroupName)
		})
	}
}

func TestRouteOptions_last_summary_wins(t *testing.T) {
	t.Parallel()

	r := apidoc.New()
	apidoc.Patch(r, "/orders/{id}", okHandler,
		apidoc.WithSummary("first"),
		apidoc.WithSummary("second"),
	)

	doc, err := apidoc.NewService(r).Generate(context.Background(), apidoc.DefaultDocumentName)
	require.NoError(t, err)
	assert.Equal(t, "second", doc.Paths["/orders/{id}"]["patch"].Summary)
}
