package gen

import (
	"strings"
	"text/template"
)

var (
	concatTemplate        *template.Template
	fixedTemplate         *template.Template
	chooserHeaderTemplate *template.Template
	chooserLetTemplate    *template.Template
	chooserBranchTemplate *template.Template
	chooserFooterTemplate *template.Template
)

func init() {
	// BlockConcat: read and write share the same boundary test.
	concatTemplate = parseLines("concat",
		"fn @{{.Names.ConcatFunc}}(first: {{.Names.VectorType}}, second: {{.Names.VectorType}}) -> {{.Names.VectorType}} {",
		"  let total_size = first.size + second.size;",
		"  {{.Names.VectorType}} {",
		"    read:   @|i|   if i < first.size               { first.read(i) }",
		"              else if i - first.size < second.size { second.read(i - first.size) }",
		"              else { undef[{{.Names.ValueType}}]() },",
		"    write: @|i,v| if i < first.size               { first.write(i, v) }",
		"             else if i - first.size < second.size { second.write(i - first.size, v) }",
		"             else { undef[()]() },",
		"",
		"    size: total_size",
		"  }",
		"}",
		"",
	)

	// BlockFixed: no bounds checks, index validity is the caller's problem.
	fixedTemplate = parseLines("fixed",
		"fn @{{.Names.CreateFunc}}{{.Size}}(init: {{.Names.ValueType}}) -> {{.Names.VectorType}} {",
		"  let mut array = [init, .. {{.Size}}];",
		"    if(is_hls()) {  }",
		"  {{.Names.VectorType}} {",
		"    read:  @|i|   array(i),",
		"    write: @|i,v| array(i) = v,",
		"",
		"    size: {{.Size}}",
		"  }",
		"}",
	)

	// BlockChooser is assembled from a header, one let per size (input order),
	// one branch per size (branch order) and the undefined fallback.
	chooserHeaderTemplate = parseLines("chooser-header",
		"fn @{{.Names.CreateFunc}}(size: {{.Names.SizeType}}, init: {{.Names.ValueType}}) -> {{.Names.VectorType}} {",
		"",
	)
	chooserLetTemplate = parseLines("chooser-let",
		"let s_{{.Size}} = size - {{.Size}};",
		"",
	)
	chooserBranchTemplate = parseLines("chooser-branch",
		"  if s_{{.Size}} >= 0 {",
		"    let dat = {{.Names.CreateFunc}}{{.Size}}(init);",
		"",
		"    if s_{{.Size}} > 0 { ",
		"      {{.Names.ConcatFunc}}(dat, {{.Names.CreateFunc}}(s_{{.Size}}, init))",
		"    } else {",
		"      dat",
		"    }",
		"  } else ",
	)
	chooserFooterTemplate = parseLines("chooser-footer",
		"{ undef[{{.Names.VectorType}}]() }",
		"}",
	)
}

// parseLines joins lines with newlines and parses the result as one template.
func parseLines(name string, lines ...string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(strings.Join(lines, "\n")))
}

// blockData is the data passed to every block template.
type blockData struct {
	Names Names
	Size  int
}
