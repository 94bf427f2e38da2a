package config

const (
	//? These paths must match the directories in the web package embed directive

	StaticLocalDir = "static"

	ViewsLocalDir     = "views"
	TemplatesLocalDir = "templates"

	TemplateLayout = "layout.html"
)

const (
	EnvConfigPath        = "CONFIG_PATH"
	EnvLogLevel          = "LOG_LEVEL"
	EnvViewsBucket       = "VIEWS_BUCKET"
	EnvS3AccessKeyID     = "S3_ACCESS_KEY_ID"
	EnvS3SecretAccessKey = "S3_SECRET_ACCESS_KEY"

	DefaultConfigPath = "config.yaml"
)
