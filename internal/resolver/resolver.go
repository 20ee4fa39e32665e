package resolver

import (
	"context"
	"errors"
	"slices"

	"github.com/vk/supertoml/internal/ctxlog"
	"github.com/vk/supertoml/internal/loader"
	"github.com/vk/supertoml/internal/tomlval"
)

// defaultMaxDepth bounds the recursive resolution chain. Cycle detection
// catches repeated names; the depth cap catches graphs that are merely
// unreasonably deep.
const defaultMaxDepth = 64

// Resolver drives table resolution. It is safe to share across invocations:
// all per-invocation state lives in the Session created by Resolve.
type Resolver struct {
	registry *Registry
	maxDepth int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth overrides the default resolution depth limit.
func WithMaxDepth(n int) Option {
	return func(r *Resolver) { r.maxDepth = n }
}

// New creates a Resolver over the given plugin registry.
func New(registry *Registry, opts ...Option) *Resolver {
	r := &Resolver{registry: registry, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Request describes one resolution invocation.
type Request struct {
	FilePath string
	Table    string

	// OutputFormat is only metadata: it is exposed to templates through the
	// "_" variable and never influences resolution itself.
	OutputFormat string
}

// Resolve loads the document at req.FilePath once and resolves req.Table,
// returning the accumulated flat mapping. On any error no partial mapping is
// returned. Each call runs in a fresh session; two concurrent calls on the
// same Resolver are independent.
func (r *Resolver) Resolve(ctx context.Context, req Request) (map[string]any, error) {
	root, err := loader.Load(req.FilePath)
	if err != nil {
		return nil, err
	}

	args := map[string]any{
		"file_path":  req.FilePath,
		"table_name": req.Table,
	}
	if req.OutputFormat != "" {
		args["output_format"] = req.OutputFormat
	}

	s := &Session{
		resolver: r,
		root:     root,
		filePath: req.FilePath,
		values:   make(map[string]any),
		meta:     map[string]any{"args": args},
	}

	ctxlog.FromContext(ctx).Debug("Resolution session started.",
		"file", req.FilePath, "table", req.Table)

	if err := s.ResolveTable(ctx, req.Table); err != nil {
		return nil, err
	}

	values := s.values
	s.values = nil
	return values, nil
}

// wrapPluginError tags err with the plugin name unless it already carries a
// plugin attribution somewhere in its chain.
func wrapPluginError(name string, err error) error {
	var pe *PluginError
	var pce *PluginConfigError
	if errors.As(err, &pe) || errors.As(err, &pce) {
		return err
	}
	return &PluginError{Plugin: name, Err: err}
}

// Session is the state of one resolution invocation: the loaded document,
// the accumulating result mapping, the call stack used for cycle detection,
// and the read-only invocation metadata. Sessions are not reusable.
type Session struct {
	resolver *Resolver
	root     map[string]any
	filePath string
	values   map[string]any
	stack    []string
	meta     map[string]any
}

// ResolveTable resolves one named table from the session's document, running
// the plugin pipeline over its values. Plugins may call back into this
// method; the shared call stack catches cross-table cycles.
func (s *Session) ResolveTable(ctx context.Context, name string) error {
	if slices.Contains(s.stack, name) {
		return &CycleError{Table: name}
	}
	if len(s.stack) >= s.resolver.maxDepth {
		return &DepthExceededError{Table: name, Limit: s.resolver.maxDepth}
	}

	s.stack = append(s.stack, name)
	// The pop must happen on every exit path, error or not. A name left on
	// the stack would turn a later legitimate resolution of the same table
	// into a false cycle.
	defer func() { s.stack = s.stack[:len(s.stack)-1] }()

	table, err := loader.Table(s.root, name, "")
	if err != nil {
		return err
	}

	local := make(map[string]any, len(table))
	var plugCfg map[string]any
	for k, v := range table {
		if k == tomlval.Reserved {
			plugCfg, _ = tomlval.AsTable(v)
			continue
		}
		local[k] = tomlval.Clone(v)
	}

	logger := ctxlog.FromContext(ctx)
	for _, p := range s.resolver.registry.pipeline() {
		config := any(map[string]any{})
		if raw, ok := plugCfg[p.Name()]; ok {
			config = tomlval.Clone(raw)
		}
		logger.Debug("Running plugin.", "table", name, "plugin", p.Name())
		if err := p.Process(ctx, s, local, config); err != nil {
			return wrapPluginError(p.Name(), err)
		}
	}

	return nil
}

// ResolveTableIsolated resolves a table against an empty result accumulator
// and returns what that resolution published, restoring the session's own
// accumulator afterwards. The call stack is shared, so cycles through the
// isolated resolution are still caught.
func (s *Session) ResolveTableIsolated(ctx context.Context, name string) (map[string]any, error) {
	saved := s.values
	s.values = make(map[string]any)
	err := s.ResolveTable(ctx, name)
	captured := s.values
	s.values = saved
	if err != nil {
		return nil, err
	}
	return captured, nil
}

// Publish merges a table's working values into the session results, last
// writer wins. Values are cloned so later frames cannot alias them.
func (s *Session) Publish(local map[string]any) {
	for _, k := range tomlval.SortedKeys(local) {
		s.values[k] = tomlval.Clone(local[k])
	}
}

// MergeValues merges vals into the session results under an optional key
// prefix.
func (s *Session) MergeValues(prefix string, vals map[string]any) {
	for _, k := range tomlval.SortedKeys(vals) {
		s.values[prefix+k] = tomlval.Clone(vals[k])
	}
}

// TemplateContext builds the variable context templates render against: the
// full current results plus the read-only "_" metadata, with extra variables
// layered on top. The returned mapping is detached from session state.
func (s *Session) TemplateContext(extra map[string]any) map[string]any {
	vars := tomlval.CloneTable(s.values)
	vars[tomlval.Reserved] = tomlval.Clone(s.meta)
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

// ValueCount returns the number of values resolved so far.
func (s *Session) ValueCount() int { return len(s.values) }

// FilePath returns the path of the session's root document. Plugins use it
// to resolve relative paths against the document's directory.
func (s *Session) FilePath() string { return s.filePath }
