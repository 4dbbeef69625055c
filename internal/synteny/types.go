package synteny

// Mode selects how a synteny row is tokenized.
type Mode int

const (
	// ModePlain treats every token of a row as a gene.
	ModePlain Mode = iota
	// ModeParalog treats the first token as a block label and the rest as genes.
	ModeParalog
)

// MinTokens is the number of tokens a row needs before it contributes edges.
func (m Mode) MinTokens() int {
	if m == ModeParalog {
		return 3
	}
	return 2
}

// HasBlockLabel reports whether the first token of a row is a block label.
func (m Mode) HasBlockLabel() bool { return m == ModeParalog }

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeParalog:
		return "paralog"
	default:
		return "unknown"
	}
}

// Record is one parsed synteny row.
type Record struct {
	Line  int    // 1-based line number in the input
	Block string // block label, empty in plain mode
	Genes []string
}

// BuildOptions controls graph construction.
type BuildOptions struct {
	Mode    Mode
	Filters []Filter // applied in order; the first rejection drops the row
}

// BuildStats counts what happened to the input rows.
type BuildStats struct {
	Lines    int // rows read
	Short    int // rows below the mode's minimum token count
	Filtered int // rows rejected by a filter
	Kept     int // rows that contributed edges
}
