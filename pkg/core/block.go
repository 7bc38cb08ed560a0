package core

// Block is a set of aligned columns flowing between pipeline stages.
// Exactly one of Num and Text is populated; both are column-major.
// Missing numeric entries are NaN.
type Block struct {
	Names []string
	Num   [][]float64
	Text  [][]string
}

// NewNumericBlock wraps numeric columns.
func NewNumericBlock(names []string, cols [][]float64) *Block {
	return &Block{Names: names, Num: cols}
}

// NewTextBlock wraps text columns.
func NewTextBlock(names []string, cols [][]string) *Block {
	return &Block{Names: names, Text: cols}
}

// IsText reports whether the block carries text columns.
func (b *Block) IsText() bool { return b.Text != nil }

// Width is the number of columns.
func (b *Block) Width() int { return len(b.Names) }

// Rows is the number of rows, 0 for a block without columns.
func (b *Block) Rows() int {
	switch {
	case len(b.Num) > 0:
		return len(b.Num[0])
	case len(b.Text) > 0:
		return len(b.Text[0])
	}
	return 0
}

// Clone deep copies the block.
func (b *Block) Clone() *Block {
	c := &Block{Names: append([]string(nil), b.Names...)}
	if b.Num != nil {
		c.Num = make([][]float64, len(b.Num))
		for j, col := range b.Num {
			c.Num[j] = append([]float64(nil), col...)
		}
	}
	if b.Text != nil {
		c.Text = make([][]string, len(b.Text))
		for j, col := range b.Text {
			c.Text[j] = append([]string(nil), col...)
		}
	}
	return c
}
