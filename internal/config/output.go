package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of plain text
	JSONFormat bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool

	// ShowFEN prints the full FEN next to the canonical state string
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowFEN: true,
	}
}
