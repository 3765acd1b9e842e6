package source

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hrutik5321/dhumal/internal/ui/table"
)

// yamlSnapshot mirrors table.Snapshot with raw nodes so numeric literals keep
// their text in both directions. The encoder takes node pointers, the decoder
// fills node values.
type yamlSnapshot struct {
	Title   string         `yaml:"title"`
	Heading []*yaml.Node   `yaml:"heading"`
	Rows    [][]*yaml.Node `yaml:"rows"`
}

type yamlSnapshotIn struct {
	Title   string        `yaml:"title"`
	Heading []yaml.Node   `yaml:"heading"`
	Rows    [][]yaml.Node `yaml:"rows"`
}

func encodeYAML(s table.Snapshot) ([]byte, error) {
	out := yamlSnapshot{
		Title:   s.Title,
		Heading: cellNodes(s.Heading),
		Rows:    make([][]*yaml.Node, len(s.Rows)),
	}
	for i, row := range s.Rows {
		out.Rows[i] = cellNodes(row)
	}
	return yaml.Marshal(out)
}

func cellNodes(row table.Row) []*yaml.Node {
	nodes := make([]*yaml.Node, len(row))
	for i, c := range row {
		nodes[i] = cellNode(c)
	}
	return nodes
}

func cellNode(c table.Cell) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: c.String()}
	switch c.Kind() {
	case table.KindEmpty:
		n.Tag, n.Value = "!!null", "null"
	case table.KindNumber:
		n.Tag = "!!float"
		if _, err := strconv.ParseInt(c.String(), 10, 64); err == nil {
			n.Tag = "!!int"
		}
	default:
		n.Tag = "!!str"
	}
	return n
}

func decodeYAML(data []byte) (table.Snapshot, error) {
	var in yamlSnapshotIn
	if err := yaml.Unmarshal(data, &in); err != nil {
		return table.Snapshot{}, err
	}

	s := table.Snapshot{Title: in.Title, Heading: nodeCells(in.Heading)}
	for _, row := range in.Rows {
		s.Rows = append(s.Rows, nodeCells(row))
	}
	return s, nil
}

func nodeCells(nodes []yaml.Node) table.Row {
	row := make(table.Row, len(nodes))
	for i := range nodes {
		row[i] = nodeCell(&nodes[i])
	}
	return row
}

func nodeCell(n *yaml.Node) table.Cell {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		data, err := yaml.Marshal(n)
		if err != nil {
			return table.Text(n.Value)
		}
		return table.Text(strings.TrimSpace(string(data)))
	}
	switch n.ShortTag() {
	case "!!null":
		return table.Empty()
	case "!!int", "!!float":
		return table.Number(n.Value)
	}
	return table.Text(n.Value)
}
