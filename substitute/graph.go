package substitute

import "context"

// GraphSubstitution is one substitution hit from the knowledge graph.
type GraphSubstitution struct {
	Substitute string
	Confidence float64
	Ratio      float64
	Impact     string
	Notes      string
	Context    []string
}

// GraphNode is an ingredient or technique node in the knowledge graph.
type GraphNode struct {
	ID         string
	Kind       string
	Properties map[string]string
}

// GraphEdge relates two nodes.
type GraphEdge struct {
	From     string
	To       string
	Relation string
	Weight   float64
}

// GraphStats summarizes graph size.
type GraphStats struct {
	Nodes int
	Edges int
}

// Graph is the knowledge-graph collaborator consumed by the engine and the
// seeding tools. Storage and traversal live behind this interface; the
// engine only reads substitution edges.
type Graph interface {
	GetSubstitutions(ctx context.Context, ingredient string) ([]GraphSubstitution, error)
	GetPairings(ctx context.Context, ingredient string) ([]string, error)
	FindPath(ctx context.Context, from, to string) ([]string, error)
	CreateNode(ctx context.Context, node GraphNode) error
	CreateEdge(ctx context.Context, edge GraphEdge) error
	GetStats(ctx context.Context) (GraphStats, error)
}
