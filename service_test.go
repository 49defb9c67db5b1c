package apidoc_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/apidoc"
)

func sampleEndpoints() apidoc.StaticEndpoints {
	return apidoc.StaticEndpoints{
		{
			Method:   http.MethodGet,
			Route:    "/users",
			Resource: "Users",
			Metadata: []any{apidoc.SummaryItem{Text: "List users"}},
		},
		{
			Method:    http.MethodPost,
			Route:     "/users",
			Resource:  "Users",
			Responses: []apidoc.ResponseShape{{StatusCode: http.StatusCreated, MediaTypes: []string{"application/json"}}},
			Metadata: []any{
				apidoc.TagsItem{Names: []string{"users", "write"}},
				apidoc.ProducesItem{ContentTypes: []string{"text/plain"}},
			},
		},
		{
			Method:   http.MethodGet,
			Route:    "/users/{id:int}",
			Resource: "Users",
		},
		{
			Method:    http.MethodGet,
			Route:     "/admin/stats",
			GroupName: "admin",
			Metadata:  []any{apidoc.TagsItem{Names: []string{"admin"}}},
		},
		{
			Method: http.MethodGet,
			Route:  "/health",
		},
	}
}

func TestService_Generate(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(sampleEndpoints(), apidoc.WithApplicationName("Shop"))

	doc, err := svc.Generate(context.Background(), "v1")
	require.NoError(t, err)

	assert.Equal(t, apidoc.OpenAPIVersion, doc.OpenAPI)
	assert.Equal(t, "Shop | v1", doc.Info.Title)
	assert.Equal(t, apidoc.DefaultDocumentVersion, doc.Info.Version)

	// The admin endpoint belongs to another document.
	assert.NotContains(t, doc.Paths, "/admin/stats")
	require.Len(t, doc.Paths, 3)

	list := doc.Paths["/users"]["get"]
	assert.Equal(t, "List users", list.Summary)
	assert.Equal(t, []string{"Users"}, list.Tags)

	create := doc.Paths["/users"]["post"]
	assert.Equal(t, []string{"users", "write"}, create.Tags)
	require.Contains(t, create.Responses, "201")
	assert.Equal(t, "Created", create.Responses["201"].Description)
	assert.ElementsMatch(t, []string{"text/plain", "application/json"}, create.Responses["201"].ContentTypes())

	require.Contains(t, doc.Paths, "/users/{id}")
	assert.Contains(t, doc.Paths["/users/{id}"]["get"].Responses, "200")

	assert.Equal(t, []string{"Shop"}, doc.Paths["/health"]["get"].Tags)

	assert.Equal(t, []apidoc.Tag{
		{Name: "Users"},
		{Name: "users"},
		{Name: "write"},
		{Name: "Shop"},
	}, doc.Tags)
}

func TestService_Generate_tag_set_equals_operation_tags(t *testing.T) {
	t.Parallel()

	eps := append(sampleEndpoints(),
		apidoc.EndpointDescription{
			Method:   http.MethodGet,
			Route:    "/users",
			Metadata: []any{apidoc.TagsItem{Names: []string{"replacement"}}},
		},
	)
	svc := apidoc.NewService(eps,
		apidoc.WithApplicationName("Shop"),
		apidoc.WithDocument("all", apidoc.WithInclude(func(apidoc.EndpointDescription) bool {
			return true
		})),
	)

	doc, err := svc.Generate(context.Background(), "all")
	require.NoError(t, err)

	opTags := make(map[string]struct{})
	for _, item := range doc.Paths {
		for _, op := range item {
			for _, name := range op.Tags {
				opTags[name] = struct{}{}
			}
		}
	}

	docTags := make(map[string]struct{})
	for _, tag := range doc.Tags {
		docTags[tag.Name] = struct{}{}
	}

	assert.Equal(t, opTags, docTags)
	assert.Len(t, doc.Tags, len(docTags), "document tags must be unique")
	assert.Equal(t, []string{"replacement"}, doc.Paths["/users"]["get"].Tags)
}

func TestService_Generate_idempotent(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(sampleEndpoints(), apidoc.WithApplicationName("Shop"))

	first, err := svc.Generate(context.Background(), "v1")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "v1")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("documents differ (-first +second):\n%s", diff)
	}

	// Each call returns a fresh document.
	first.Paths["/users"]["get"] = apidoc.Operation{Summary: "changed"}
	assert.Equal(t, "List users", second.Paths["/users"]["get"].Summary)
}

func TestService_Generate_documents(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(sampleEndpoints(),
		apidoc.WithApplicationName("Shop"),
		apidoc.WithDocument("v1"),
		apidoc.WithDocument("admin", apidoc.WithTagDescriptions(map[string]string{"admin": "Administration"})),
		apidoc.WithDocument("public", apidoc.WithInclude(func(ep apidoc.EndpointDescription) bool {
			return ep.Method == http.MethodGet && ep.GroupName == ""
		})),
	)

	assert.Equal(t, []string{"admin", "public", "v1"}, svc.DocumentNames())

	tests := map[string]struct {
		wantPaths []string
		wantTags  []apidoc.Tag
	}{
		"v1": {
			wantPaths: []string{"/users", "/users/{id}", "/health"},
			wantTags:  []apidoc.Tag{{Name: "Users"}, {Name: "users"}, {Name: "write"}, {Name: "Shop"}},
		},
		"admin": {
			wantPaths: []string{"/users", "/users/{id}", "/admin/stats", "/health"},
			wantTags: []apidoc.Tag{
				{Name: "Users"},
				{Name: "users"},
				{Name: "write"},
				{Name: "admin", Description: "Administration"},
				{Name: "Shop"},
			},
		},
		"public": {
			wantPaths: []string{"/users", "/users/{id}", "/health"},
			wantTags:  []apidoc.Tag{{Name: "Users"}, {Name: "Shop"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := svc.Generate(context.Background(), name)
			require.NoError(t, err)

			paths := make([]string, 0, len(doc.Paths))
			for p := range doc.Paths {
				paths = append(paths, p)
			}
			assert.ElementsMatch(t, tc.wantPaths, paths)
			assert.Equal(t, tc.wantTags, doc.Tags)
			assert.Equal(t, "Shop | "+name, doc.Info.Title)
		})
	}
}

func TestService_Generate_default_document(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(apidoc.StaticEndpoints{})
	assert.Equal(t, []string{apidoc.DefaultDocumentName}, svc.DocumentNames())

	doc, err := svc.Generate(context.Background(), apidoc.DefaultDocumentName)
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
	assert.Empty(t, doc.Tags)
	assert.Equal(t, " | v1", doc.Info.Title)
}

func TestService_Generate_unknown_document(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(sampleEndpoints())

	doc, err := svc.Generate(context.Background(), "v2")
	require.ErrorIs(t, err, apidoc.ErrDocumentNotFound)
	assert.Nil(t, doc)
}

func TestService_Generate_contract_error(t *testing.T) {
	t.Parallel()

	eps := append(sampleEndpoints(), apidoc.EndpointDescription{Method: http.MethodGet, Route: ""})
	svc := apidoc.NewService(eps)

	doc, err := svc.Generate(context.Background(), "v1")
	require.ErrorIs(t, err, apidoc.ErrEmptyPath)

	var ce *apidoc.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.MethodGet, ce.Method)
	assert.Nil(t, doc)
}

func TestService_Generate_excluded_endpoints_skip_contract_check(t *testing.T) {
	t.Parallel()

	eps := append(sampleEndpoints(), apidoc.EndpointDescription{Method: http.MethodGet, Route: "", GroupName: "other"})
	svc := apidoc.NewService(eps)

	_, err := svc.Generate(context.Background(), "v1")
	require.NoError(t, err)
}

func TestService_Generate_custom_collaborators(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(sampleEndpoints(),
		apidoc.WithPathNormalizer(func(route string) string { return "/api" + route }),
		apidoc.WithReasonPhrases(func(code int) string { return "status " + http.StatusText(code) }),
	)

	doc, err := svc.Generate(context.Background(), "v1")
	require.NoError(t, err)

	require.Contains(t, doc.Paths, "/api/users/{id:int}")
	assert.Equal(t, "status OK", doc.Paths["/api/users"]["get"].Responses["200"].Description)
}

func TestService_Generate_logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := apidoc.NewService(sampleEndpoints(), apidoc.WithLogger(logger))

	_, err := svc.Generate(context.Background(), "v1")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "document generated")
	assert.Contains(t, out, "document=v1")
	assert.Contains(t, out, "paths=3")
}

func TestService_Generate_concurrent(t *testing.T) {
	t.Parallel()

	svc := apidoc.NewService(sampleEndpoints(),
		apidoc.WithDocument("v1"),
		apidoc.WithDocument("admin"),
	)

	want, err := svc.Generate(context.Background(), "admin")
	require.NoError(t, err)

	var wg sync.WaitGroup
	docs := make([]*apidoc.Document, 16)
	errs := make([]error, len(docs))
	for i := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "admin"
			if i%2 == 1 {
				name = "v1"
			}
			docs[i], errs[i] = svc.Generate(context.Background(), name)
		}()
	}
	wg.Wait()

	for i := range docs {
		require.NoError(t, errs[i])
		if i%2 == 0 {
			assert.Empty(t, cmp.Diff(want, docs[i]))
		}
	}
}
