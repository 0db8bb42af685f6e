package carbonboard

// Screen indicates which screen is currently displayed
type Screen int

const (
	DashboardScreen Screen = iota
	ProjectsScreen
	DetailScreen
)
