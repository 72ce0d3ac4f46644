package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/internal/logging"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/navigator"
	"github.com/aretw0/cmdassist/pkg/ports"
	"github.com/aretw0/cmdassist/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the whole lookup store.
const CatalogURI = "cmdassist://catalog"

// StepResponse aligns with the HTTP RichResponse and is shared by the wizard tools.
type StepResponse struct {
	State  *domain.State  `json:"state" jsonschema_description:"State to send back on the next wizard_step call"`
	Screen *domain.Screen `json:"screen,omitempty" jsonschema_description:"Screen for the state; absent when the state lacks a required selection"`
	Moved  bool           `json:"moved" jsonschema_description:"False when the event was ignored"`
}

// Entry summarizes a platform or vendor for listing tools.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Devices     []string `json:"devices,omitempty"`
}

// EntryList wraps listing results; structured tool output must be an object.
type EntryList struct {
	Entries []Entry `json:"entries"`
}

// Engine defines what the MCP server needs from the wizard.
type Engine interface {
	ports.Wizard
	Lookup(target, selection string) (domain.CommandResult, error)
	Search(query, vendor string) domain.TopicMatch
	Catalog() ports.Catalog
	Edges() []navigator.Edge
}

// Server exposes the wizard as MCP tools. It keeps no sessions: callers
// carry the state between calls.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
		mcpServer: server.NewMCPServer("cmdassist-mcp", strings.TrimSpace(cmdassist.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx ends.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_platforms",
		mcp.WithDescription("List the operating systems with command categories."),
		mcp.WithOutputSchema[EntryList](),
	), mcp.NewStructuredToolHandler(s.handleListPlatforms))

	s.mcpServer.AddTool(mcp.NewTool("list_vendors",
		mcp.WithDescription("List network equipment vendors, optionally those whose devices mention a device type."),
		mcp.WithString("device", mcp.Description("Device type filter"), mcp.Enum("firewall", "router", "switch")),
		mcp.WithOutputSchema[EntryList](),
	), mcp.NewStructuredToolHandler(s.handleListVendors))

	s.mcpServer.AddTool(mcp.NewTool("lookup_command",
		mcp.WithDescription("Get the command card for a platform or vendor. Unknown selections return a generic card with fallback=true."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Platform id (e.g. linux) or vendor id (e.g. cisco)")),
		mcp.WithString("selection", mcp.Required(), mcp.Description("Category title, action label or free text")),
		mcp.WithOutputSchema[domain.CommandResult](),
	), mcp.NewStructuredToolHandler(s.handleLookup))

	s.mcpServer.AddTool(mcp.NewTool("search_topics",
		mcp.WithDescription("Answer a free-text networking question (e.g. \"osfp area 0\", \"vlan trunk\") with a command block. Typos are corrected; the vendor is detected when omitted."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The question")),
		mcp.WithString("vendor", mcp.Description("Vendor id to prefer (e.g. cisco, juniper)")),
		mcp.WithOutputSchema[domain.TopicMatch](),
	), mcp.NewStructuredToolHandler(s.handleSearch))

	s.mcpServer.AddTool(mcp.NewTool("wizard_step",
		mcp.WithDescription("Drive the guided wizard one event at a time. Omit state to start; omit kind to render the state as is."),
		mcp.WithString("state", mcp.Description("JSON state returned by the previous call")),
		mcp.WithString("kind", mcp.Description("Event kind"), mcp.Enum("select", "query", "back", "reset")),
		mcp.WithString("value", mcp.Description("Option id for select, free text for query")),
		mcp.WithOutputSchema[StepResponse](),
	), mcp.NewStructuredToolHandler(s.handleWizardStep))

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the wizard step machine as a list of edges."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.engine.Edges())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode graph: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleListPlatforms(_ context.Context, _ mcp.CallToolRequest, _ map[string]interface{}) (EntryList, error) {
	out := EntryList{Entries: []Entry{}}
	for _, p := range s.engine.Catalog().Platforms() {
		out.Entries = append(out.Entries, Entry{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return out, nil
}

func (s *Server) handleListVendors(_ context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (EntryList, error) {
	device, _ := args["device"].(string)
	if device != "" {
		if _, ok := domain.ParseDeviceType(device); !ok {
			return EntryList{}, fmt.Errorf("unknown device type %q", device)
		}
	}

	out := EntryList{Entries: []Entry{}}
	for _, v := range s.engine.Catalog().Vendors() {
		if device != "" && !slices.ContainsFunc(v.Devices, func(d string) bool {
			return strings.Contains(strings.ToLower(d), device)
		}) {
			continue
		}
		out.Entries = append(out.Entries, Entry{ID: v.ID, Name: v.Name, Description: v.Description, Devices: v.Devices})
	}
	return out, nil
}

func (s *Server) handleLookup(_ context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (domain.CommandResult, error) {
	target, _ := args["target"].(string)
	selection, _ := args["selection"].(string)

	clean, err := runner.SanitizeInput(strings.TrimSpace(selection))
	if err != nil {
		s.logger.Warn("MCP Lookup: Input rejected", "err", err, "size", len(selection))
		return domain.CommandResult{}, fmt.Errorf("input rejected: %w", err)
	}
	return s.engine.Lookup(target, clean)
}

func (s *Server) handleSearch(_ context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (domain.TopicMatch, error) {
	query, _ := args["query"].(string)
	vendor, _ := args["vendor"].(string)

	clean, err := runner.SanitizeInput(query)
	if err != nil {
		s.logger.Warn("MCP Search: Input rejected", "err", err, "size", len(query))
		return domain.TopicMatch{}, fmt.Errorf("input rejected: %w", err)
	}
	return s.engine.Search(clean, vendor), nil
}

func (s *Server) handleWizardStep(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	var state *domain.State
	if raw, _ := args["state"].(string); strings.TrimSpace(raw) != "" {
		state = &domain.State{}
		if err := json.Unmarshal([]byte(raw), state); err != nil {
			return StepResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidState, err)
		}
		if err := state.Validate(); err != nil {
			return StepResponse{}, err
		}
		if state.History == nil {
			state.History = []domain.Step{}
		}
	} else {
		state = s.engine.Start(ctx, "")
	}

	kind, _ := args["kind"].(string)
	if kind == "" {
		return StepResponse(*runner.RenderState(ctx, s.engine, state)), nil
	}

	value, _ := args["value"].(string)
	clean, err := runner.SanitizeInput(value)
	if err != nil {
		s.logger.Warn("MCP wizard_step: Input rejected", "err", err, "size", len(value))
		return StepResponse{}, fmt.Errorf("input rejected: %w", err)
	}
	in := domain.Input{Kind: domain.InputKind(kind), Value: clean}
	if err := in.Validate(); err != nil {
		return StepResponse{}, err
	}

	return StepResponse(*runner.NavigateAndRender(ctx, s.engine, state, in)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Command catalog",
		mcp.WithResourceDescription("Every platform, vendor and free-text topic with their commands."),
		mcp.WithMIMEType("application/json"),
	), s.readCatalog)
}

func (s *Server) readCatalog(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cat := s.engine.Catalog()
	jsonBytes, err := json.Marshal(struct {
		Platforms []domain.Platform `json:"platforms"`
		Vendors   []domain.Vendor   `json:"vendors"`
		Topics    []domain.Topic    `json:"topics"`
	}{cat.Platforms(), cat.Vendors(), cat.Topics()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
