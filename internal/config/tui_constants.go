package config

// Layout constants.
const (
	// LabelColumnWidth is the width reserved for input field labels.
	LabelColumnWidth = 8

	// InputWidth is the visible width of each text input.
	InputWidth = 40

	// MinProgressWidth is the narrowest progress bar rendered.
	MinProgressWidth = 10

	// MaxProgressWidth caps the progress bar on wide terminals.
	MaxProgressWidth = 60

	// CompactModeThreshold hides the help line below this width.
	CompactModeThreshold = 50
)

// Input constraints.
const (
	// MaxTimeInputLength bounds the time field.
	MaxTimeInputLength = 32

	// MaxStepInputLength bounds the step field.
	MaxStepInputLength = 6

	// MaxTextInputLength bounds prefix and ending.
	MaxTextInputLength = 100

	// MaxPathInputLength bounds the output path.
	MaxPathInputLength = 1024

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
