// Package exchange is the persistence boundary of spanforest.
//
// A Document is a vertex list of {index, x, y} records and an edge list of
// {source_index, dest_index, weight} records:
//
//	{
//	  "id": "2f0c…",
//	  "vertices": [{"index": 0, "x": 0, "y": 0}, {"index": 1, "x": 50, "y": 0}],
//	  "edges":    [{"source_index": 0, "dest_index": 1, "weight": 1}]
//	}
//
// Export writes live vertex handles as indices. Import never trusts them: it
// assigns fresh handles, remaps through a lookup table, and replays AddEdge.
// Edges that name an index absent from the vertex list are dropped and counted,
// never fatal. RestoreIndices maps a forest computed on an imported graph back
// to the indices of its source document.
//
// Codecs: JSON (encoding/json) and YAML (gopkg.in/yaml.v3), picked explicitly
// with a Format or from a file extension. Decoding is strict about field names.
package exchange
