// Package apidoc builds OpenAPI documents from endpoint descriptions.
//
// An EndpointSource supplies one EndpointDescription per reachable
// operation: route, verb, declared responses, and an ordered metadata list.
// A Service turns them into a Document for a named API surface:
//
//	r := apidoc.New()
//	users := r.Group("/users", apidoc.WithGroupResource("Users"))
//	apidoc.Get(users, "/{id}", getUser,
//	    apidoc.WithSummary("Get user"),
//	    apidoc.WithResponse(http.StatusOK, "application/json"),
//	)
//
//	svc := apidoc.NewService(r, apidoc.WithApplicationName("Sample"))
//	doc, err := svc.Generate(ctx, "v1")
//
// Where several metadata items supply the same value (summary,
// description, tags, operationId) the last one wins. Operations without
// tag metadata are tagged with their resource, or with the application
// name. Every tag used by an operation appears once in Document.Tags, in
// first-seen order.
//
// Documents are rebuilt on every call and can be served over HTTP:
//
//	r.MapOpenAPI(svc) // GET /openapi/v1.json, /openapi/v1.yaml
//	r.MapDocs(svc)    // GET /docs/v1
package apidoc
