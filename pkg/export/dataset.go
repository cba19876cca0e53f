package export

// Dataset is tabular content ready for rendering. Rows are ordered
// slices rather than maps so renderers emit cells in roster order.
type Dataset struct {
	Headers []string
	Rows    [][]string
}
