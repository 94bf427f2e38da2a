package config

const (
	ErrLoadConfigFmt   = "Failed to load config: %v"
	ErrLoadViews       = "Failed to load views"
	ErrBuildTable      = "Failed to build navigation table"
	ErrUnresolvedRoute = "Route references a view that is not defined"
	ErrParseTemplates  = "Failed to parse templates"
	ErrServer          = "Server error"
)
