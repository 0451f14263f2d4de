// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: tag tables -> core.Graph.
//
// Determinism:
//   - Ways are processed in ascending key order, so edge IDs ("e1", ...) are
//     stable for equal inputs.

package builder

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/level"
)

// Tag keys and values understood by Build.
const (
	TagHighway   = "highway"
	TagConveying = "conveying"
	TagIndoor    = "indoor"
	TagLevel     = "level"
	TagLevelRef  = "level:ref"
	TagName      = "name"
	TagEntrance  = "entrance"

	valueSteps    = "steps"
	valueElevator = "elevator"
	valueYes      = "yes"
)

// Tags is an OSM-style key/value table.
type Tags map[string]string

// Ways maps a way key (the nodes it passes, e.g. "ABCD") to its tags.
type Ways map[string]Tags

// Nodes maps a node name to its tags.
type Nodes map[string]Tags

// Map is a built fixture: the graph plus the layout it was drawn from.
type Map struct {
	Graph  *core.Graph
	Layout Layout

	// Islands lists, sorted, the nodes outside the largest connected part,
	// typically unconnected position markers.
	Islands []string
}

// Build parses ascii and constructs the graph described by ways and nodes.
//
// Errors: ErrEmptyLayout, ErrDuplicateNode, ErrUnknownNode, ErrBadWay.
// Complexity: O(len(ascii) + Σ|way|).
func Build(ascii string, ways Ways, nodes Nodes, opts ...BuilderOption) (*Map, error) {
	layout, err := ParseLayout(ascii, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	g, err := BuildGraph(layout, ways, nodes, opts...)
	if err != nil {
		return nil, err
	}
	parts, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	m := &Map{Graph: g, Layout: layout}
	for _, part := range parts[1:] {
		m.Islands = append(m.Islands, part...)
	}
	sort.Strings(m.Islands)
	if len(m.Islands) > 0 {
		newBuilderConfig(opts...).logger.Debug("layout nodes outside the main component",
			zap.Int("components", len(parts)),
			zap.Strings("nodes", m.Islands),
		)
	}

	return m, nil
}

// BuildGraph constructs a graph from an already parsed layout.
func BuildGraph(layout Layout, ways Ways, nodes Nodes, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph(core.WithMultiEdges())

	for _, name := range layout.Names() {
		if err := g.AddVertex(name, core.WithPoint(layout[name])); err != nil {
			return nil, fmt.Errorf("BuildGraph: AddVertex(%s): %w", name, err)
		}
	}

	for _, name := range sortedKeys(nodes) {
		if _, ok := layout[name]; !ok {
			return nil, fmt.Errorf("BuildGraph: node %q: %w", name, ErrUnknownNode)
		}
		if err := g.AddVertex(name, nodeOptions(cfg, name, nodes[name])...); err != nil {
			return nil, fmt.Errorf("BuildGraph: node %q: %w", name, err)
		}
	}

	for _, key := range sortedKeys(ways) {
		if err := addWay(g, cfg, layout, key, ways[key]); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addWay splits a way into one edge per consecutive node pair.
func addWay(g *core.Graph, cfg builderConfig, layout Layout, key string, tags Tags) error {
	names := []rune(key)
	if len(names) < 2 {
		return fmt.Errorf("way %q: %w", key, ErrBadWay)
	}
	for _, r := range names {
		if _, ok := layout[string(r)]; !ok {
			return fmt.Errorf("way %q: node %q: %w", key, string(r), ErrUnknownNode)
		}
	}

	wayName := key
	if n := tags[TagName]; n != "" {
		wayName = n
	}
	attrs := edgeOptions(cfg, key, tags)
	for i := 1; i < len(names); i++ {
		from, to := string(names[i-1]), string(names[i])
		length := geo.DistanceHaversine(layout[from], layout[to])
		opts := append([]core.EdgeOption{core.WithWay(wayName), core.WithLength(length)}, attrs...)
		if _, err := g.AddEdge(from, to, opts...); err != nil {
			return fmt.Errorf("way %q: AddEdge(%s→%s): %w", key, from, to, err)
		}
	}

	return nil
}

func edgeOptions(cfg builderConfig, key string, tags Tags) []core.EdgeOption {
	opts := []core.EdgeOption{
		core.WithUse(useOf(tags)),
		core.WithIndoor(tags[TagIndoor] == valueYes),
	}
	if raw, ok := tags[TagLevel]; ok {
		opts = append(opts, core.WithLevels(parseLevels(cfg, "way", key, raw), raw))
	}
	if ref := tags[TagLevelRef]; ref != "" {
		opts = append(opts, core.WithLevelRef(ref))
	}

	return opts
}

func nodeOptions(cfg builderConfig, name string, tags Tags) []core.VertexOption {
	opts := []core.VertexOption{core.WithVertexIndoor(tags[TagIndoor] == valueYes)}
	switch {
	case tags[TagHighway] == valueElevator:
		opts = append(opts, core.WithNodeType(core.NodeElevator))
	case tags[TagEntrance] != "" && tags[TagEntrance] != "no":
		opts = append(opts, core.WithNodeType(core.NodeBuildingEntrance))
	}
	if raw, ok := tags[TagLevel]; ok {
		opts = append(opts, core.WithVertexLevels(parseLevels(cfg, "node", name, raw)))
	}

	return opts
}

// useOf maps highway/conveying tags to the closed Use enumeration.
func useOf(tags Tags) core.Use {
	switch tags[TagHighway] {
	case valueSteps:
		if tags[TagConveying] == valueYes {
			return core.UseEscalator
		}
		return core.UseSteps
	case valueElevator:
		return core.UseElevator
	default:
		return core.UsePlain
	}
}

// parseLevels degrades a bad descriptor to "no level information".
func parseLevels(cfg builderConfig, kind, owner, raw string) level.Set {
	s, err := level.Parse(raw)
	if err != nil {
		cfg.logger.Warn("ignoring unparsable level tag",
			zap.String(kind, owner),
			zap.String("descriptor", raw),
			zap.Error(err))
		return nil
	}

	return s
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
