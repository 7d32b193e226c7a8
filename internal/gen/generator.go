package gen

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"datavec-generator/internal/logger"
)

// ErrNoSizes is returned when generation is requested for an empty size list.
var ErrNoSizes = errors.New("no data vector sizes given")

// Generator emits data vector definitions for a list of sizes.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Output is the result of one generation run.
type Output struct {
	Blocks []Block
}

// String renders all blocks, each followed by a newline.
func (o *Output) String() string {
	var sb strings.Builder
	for _, b := range o.Blocks {
		sb.WriteString(b.Text)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Bytes returns String as a byte slice.
func (o *Output) Bytes() []byte {
	return []byte(o.String())
}

// Generate emits the concatenation helper, one fixed-size constructor per size
// in the given order, and the chooser. Sizes must be positive; duplicates are
// emitted as given.
func (g *Generator) Generate(sizes []int) (*Output, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}

	for i, s := range sizes {
		if s <= 0 {
			return nil, errors.Newf("size #%d must be positive, got %d", i+1, s)
		}
	}

	out := &Output{Blocks: make([]Block, 0, len(sizes)+2)}

	concat, err := g.emitConcat()
	if err != nil {
		return nil, err
	}

	out.Blocks = append(out.Blocks, concat)

	for _, s := range sizes {
		fixed, err := g.emitFixed(s)
		if err != nil {
			return nil, err
		}

		out.Blocks = append(out.Blocks, fixed)
	}

	chooser, err := g.emitChooser(sizes)
	if err != nil {
		return nil, err
	}

	out.Blocks = append(out.Blocks, chooser)

	for _, b := range out.Blocks {
		logger.Logger.Debugw("emitted block", "kind", b.Kind.String(), "size", b.Size, "bytes", len(b.Text))
	}

	return out, nil
}

func (g *Generator) emitConcat() (Block, error) {
	text, err := g.render(concatTemplate, 0)
	if err != nil {
		return Block{}, err
	}

	return Block{Kind: BlockConcat, Text: text}, nil
}

func (g *Generator) emitFixed(size int) (Block, error) {
	text, err := g.render(fixedTemplate, size)
	if err != nil {
		return Block{}, err
	}

	return Block{Kind: BlockFixed, Size: size, Text: text}, nil
}

func (g *Generator) emitChooser(sizes []int) (Block, error) {
	var sb strings.Builder

	write := func(tmpl *template.Template, size int) error {
		text, err := g.render(tmpl, size)
		if err != nil {
			return err
		}

		sb.WriteString(text)

		return nil
	}

	if err := write(chooserHeaderTemplate, 0); err != nil {
		return Block{}, err
	}

	for _, s := range sizes {
		if err := write(chooserLetTemplate, s); err != nil {
			return Block{}, err
		}
	}

	sb.WriteByte('\n')

	for _, s := range BranchOrder(sizes, g.config.Order) {
		if err := write(chooserBranchTemplate, s); err != nil {
			return Block{}, err
		}
	}

	if err := write(chooserFooterTemplate, 0); err != nil {
		return Block{}, err
	}

	return Block{Kind: BlockChooser, Text: sb.String()}, nil
}

func (g *Generator) render(tmpl *template.Template, size int) (string, error) {
	var buf bytes.Buffer

	err := tmpl.Execute(&buf, blockData{Names: g.config.Names, Size: size})
	if err != nil {
		return "", errors.Wrapf(err, "executing %s template", tmpl.Name())
	}

	return buf.String(), nil
}
