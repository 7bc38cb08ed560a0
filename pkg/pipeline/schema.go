package pipeline

// ColumnKind tags a ColumnGroup with how its columns are processed.
type ColumnKind uint8

const (
	Numeric ColumnKind = iota + 1
	Categorical
)

func (k ColumnKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return "unknown"
}

// ColumnGroup is a fixed, ordered set of feature columns processed alike.
type ColumnGroup struct {
	Name    string
	Kind    ColumnKind
	Columns []string
}

// Vocabulary is the ordered set of allowed text values of one categorical column.
type Vocabulary struct {
	Column string
	Values []string
}
