package consts

// Colors
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[96m"
	ColorWhite  = "\033[97m"
)

const (
	RedError      string = ColorRed + "[ERROR] " + ColorReset
	YellowDebug   string = ColorYellow + "[Debug] " + ColorReset
	YellowWarning string = ColorYellow + "[Warning] " + ColorReset
	BlueInfo      string = ColorCyan + "[Info] " + ColorReset
)
