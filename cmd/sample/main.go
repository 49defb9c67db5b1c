// Command sample serves a small users API together with its generated
// OpenAPI documents.
//
// Run:
//
//	go run ./cmd/sample serve                    # listen on :8080
//	go run ./cmd/sample spec                     # print the v1 document
//	go run ./cmd/sample spec --doc admin -f yaml # print the admin document as YAML
//	go run ./cmd/sample spec -o openapi.json --validate
//
// Then explore:
//
//	GET  http://localhost:8080/openapi/v1.json
//	GET  http://localhost:8080/openapi/admin.yaml
//	GET  http://localhost:8080/docs/v1
//	GET  http://localhost:8080/v1/users
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"

	"github.com/spf13/cobra"

	"github.com/bjaus/apidoc"
)

const appName = "Sample API"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sample",
		Short:        "Sample users API with generated OpenAPI documents",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newSpecCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var (
		addr    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

			r, svc := newAPI(logger)
			r.Use(
				apidoc.RequestID(),
				apidoc.Recovery(logger),
				apidoc.Logger(logger),
				apidoc.CORS(),
			)
			r.MapOpenAPI(svc,
				apidoc.WithDocumentRateLimit(apidoc.RateLimitConfig{Rate: 5, Burst: 10}),
				apidoc.WithDocumentMiddleware(apidoc.Compress()),
			)
			r.MapDocs(svc)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger.Info("starting server", "addr", addr, "documents", svc.DocumentNames())
			if err := r.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newSpecCommand() *cobra.Command {
	var (
		docName  string
		format   string
		outFile  string
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Print a generated document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, svc := newAPI(slog.New(slog.NewTextHandler(os.Stderr, nil)))

			doc, err := svc.Generate(cmd.Context(), docName)
			if err != nil {
				return err
			}

			if validate {
				if err := doc.OpenAPI3().Validate(cmd.Context()); err != nil {
					return fmt.Errorf("validate %s: %w", docName, err)
				}
			}

			w := cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile) //nolint:gosec // user-provided CLI flag
				if err != nil {
					return err
				}
				defer func() {
					if err := f.Close(); err != nil {
						slog.Error("failed to close output file", "err", err)
					}
				}()
				w = f
			}
			return writeDocument(w, doc, format)
		},
	}
	cmd.Flags().StringVar(&docName, "doc", apidoc.DefaultDocumentName, "document name")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the document before writing it")
	return cmd
}

func writeDocument(w io.Writer, doc *apidoc.Document, format string) error {
	switch format {
	case "json":
		return apidoc.WriteJSON(w, doc)
	case "yaml", "yml":
		return apidoc.WriteYAML(w, doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newAPI(logger *slog.Logger) (*apidoc.Router, *apidoc.Service) {
	r := apidoc.New()

	apidoc.Get(r, "/v1/health", handleHealth,
		apidoc.WithSummary("Health check"),
		apidoc.WithTags("ops"),
		apidoc.WithProduces("application/json"),
	)

	users := r.Group("/v1/users",
		apidoc.WithGroupResource("Users"),
		apidoc.WithGroupDocument("v1"),
		apidoc.WithGroupMetadata(apidoc.ProducesItem{ContentTypes: []string{"application/json"}}),
	)
	apidoc.Get(users, "", handleListUsers,
		apidoc.WithName("listUsers"),
		apidoc.WithSummary("List users"),
		apidoc.WithDescription("Returns all users."),
	)
	apidoc.Post(users, "", handleCreateUser,
		apidoc.WithName("createUser"),
		apidoc.WithSummary("Create user"),
		apidoc.WithResponse(http.StatusCreated),
		apidoc.WithResponse(http.StatusBadRequest, "application/problem+json"),
	)
	apidoc.Get(users, "/{id}", handleGetUser,
		apidoc.WithName("getUser"),
		apidoc.WithSummary("Get user by ID"),
		apidoc.WithDefaultResponse(),
		apidoc.WithResponse(http.StatusNotFound),
	)
	apidoc.Delete(users, "/{id}", handleDeleteUser,
		apidoc.WithName("deleteUser"),
		apidoc.WithSummary("Delete user"),
		apidoc.WithResponse(http.StatusNoContent),
	)

	admin := r.Group("/admin",
		apidoc.WithGroupDocument("admin"),
		apidoc.WithGroupTags("admin"),
	)
	apidoc.Post(admin, "/users/{id}/reset", handleResetUser,
		apidoc.WithSummary("Reset a user"),
		apidoc.WithResponse(http.StatusAccepted),
	)

	svc := apidoc.NewService(r,
		apidoc.WithApplicationName(appName),
		apidoc.WithDocument("v1", apidoc.WithTagDescriptions(map[string]string{
			"Users": "User management",
			"ops":   "Operational endpoints",
		})),
		apidoc.WithDocument("admin"),
		apidoc.WithLogger(logger),
	)
	return r, svc
}

// In-memory store.

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var store = &userStore{
	users:  map[string]User{"1": {ID: "1", Name: "Alice"}, "2": {ID: "2", Name: "Bob"}},
	nextID: 3,
}

type userStore struct {
	mu     sync.RWMutex
	users  map[string]User
	nextID int
}

func (s *userStore) list() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func (s *userStore) get(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *userStore) create(name string) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := User{ID: strconv.Itoa(s.nextID), Name: name}
	s.nextID++
	s.users[u.ID] = u
	return u
}

func (s *userStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	delete(s.users, id)
	return ok
}

// Handlers.

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort after WriteHeader
	json.NewEncoder(w).Encode(v)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleListUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, store.list())
}

func handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, store.create(body.Name))
}

func handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, ok := store.get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !store.delete(r.PathValue("id")) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleResetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := store.get(r.PathValue("id")); !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
