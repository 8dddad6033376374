package styles

// Symbols holds the status icons based on nerdfont configuration
type Symbols struct {
	Success string
	Warning string
	Error   string
}

var defaultSymbols = Symbols{
	Success: "✓",
	Warning: "!",
	Error:   "✗",
}

var nerdfontSymbols = Symbols{
	Success: "\uf00c", // nf-fa-check
	Warning: "\uf071", // nf-fa-warning
	Error:   "\uf00d", // nf-fa-close
}

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// Success renders msg prefixed with the success symbol.
func Success(msg string) string {
	return SuccessStyle.Render(currentSymbols.Success) + " " + msg
}

// Warning renders msg prefixed with the warning symbol.
func Warning(msg string) string {
	return WarningStyle.Render(currentSymbols.Warning + " " + msg)
}

// Error renders msg prefixed with the error symbol.
func Error(msg string) string {
	return ErrorStyle.Render(currentSymbols.Error + " " + msg)
}

// Muted renders msg in the muted color.
func Muted(msg string) string {
	return MutedStyle.Render(msg)
}
