package config

const (
	LightTheme string = "light"
	DarkTheme  string = "dark"

	LightThemeIcon = "&#9728;"
	DarkThemeIcon  = "&#9790;"
)
