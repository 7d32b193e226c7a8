package gen

//go:generate go tool stringer -type=BlockKind -output=blockkind_string.go

type BlockKind int

const (
	_ BlockKind = iota // skip zero value, use it as a default (invalid) value for BlockKind

	BlockConcat
	BlockFixed
	BlockChooser
)

// Block is one emitted function definition.
type Block struct {
	Kind BlockKind
	// Size is the fixed length for BlockFixed and zero otherwise.
	Size int
	Text string
}
