package nodes

import (
	"github.com/google/uuid"
)

// Factory creates nodes for the kinds in its table.
type Factory struct {
	table *Table
}

// NewFactory returns a factory backed by table.
func NewFactory(table *Table) *Factory {
	return &Factory{table: table}
}

// Table returns the kind table the factory reads.
func (f *Factory) Table() *Table { return f.table }

// Create returns a new node of kind. With initializeNow the node is fully
// initialized, which for wrappers builds the default inner node. Without it
// the caller must call Initialize before use; this is the cheap path for
// reading static metadata.
func (f *Factory) Create(kind KindID, initializeNow bool) (*Node, error) {
	spec, err := f.table.Instantiable(kind)
	if err != nil {
		return nil, err
	}

	n := &Node{
		ID:      uuid.New(),
		spec:    spec,
		factory: f,
	}
	if initializeNow {
		if err := n.Initialize(); err != nil {
			return nil, err
		}
	}
	return n, nil
}
