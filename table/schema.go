package table

// Schema is an ordered list of column names. Binding between a schema and
// table data is positional: the i-th value of every row belongs to the i-th
// column regardless of what a source file's header claimed. Name lookup
// exists for diagnostics and tests; production code addresses columns by
// fixed index.
type Schema struct {
	names []string
}

func NewSchema(names ...string) Schema {
	owned := make([]string, len(names))
	copy(owned, names)
	return Schema{names: owned}
}

func (s Schema) Len() int {
	return len(s.names)
}

func (s Schema) Name(i int) string {
	return s.names[i]
}

func (s Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Index returns the position of the named column, or -1 when absent.
func (s Schema) Index(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}
