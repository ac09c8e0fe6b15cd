package expressions

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/GDVFox/gotabulator/expression/parser"
	"github.com/GDVFox/gotabulator/tabulator_node/api/common"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util/httplib"
)

// GetGraph отрисовывает дерево выражения из реестра в SVG.
func GetGraph(r *http.Request) (*httplib.Response, error) {
	expr, resp := loadExpression(r)
	if resp != nil {
		return resp, nil
	}

	compiled, err := external.Tabulator.Compile(expr.Mode, expr.Expression)
	if err != nil {
		return common.NewTabulationErrorResponse(err), nil
	}

	img, err := buildGraph(compiled.Describe())
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.RenderGraphErrorCode, err.Error())), nil
	}
	return httplib.NewOKResponse(img, httplib.ContentTypeSVG), nil
}

func buildGraph(root *parser.Description) ([]byte, error) {
	g := graphviz.New()
	defer g.Close()

	graph, err := g.Graph(graphviz.Directed)
	if err != nil {
		return nil, err
	}
	defer graph.Close()

	// имена вершин уникальны, подписи могут повторяться.
	nodes := make(map[*parser.Description]*cgraph.Node)
	err = root.Walk(func(d, parent *parser.Description) error {
		node, err := graph.CreateNode("n" + strconv.Itoa(len(nodes)))
		if err != nil {
			return err
		}
		node.SetLabel(d.Label)
		if len(d.Children) == 0 {
			node.SetShape(cgraph.BoxShape)
		} else {
			node.SetShape(cgraph.EllipseShape)
		}
		nodes[d] = node

		if parent != nil {
			if _, err := graph.CreateEdge("e"+strconv.Itoa(len(nodes)), nodes[parent], node); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
