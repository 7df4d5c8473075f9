package config

// Config is the top-level coursetrail configuration, corresponding to
// .coursetrail.yml.
type Config struct {
	BackendURL            string `yaml:"backend_url" koanf:"backend_url"`
	Model                 string `yaml:"model" koanf:"model"`
	Port                  int    `yaml:"port" koanf:"port"`
	AllowAllOrigins       bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
	ToastSeconds          int    `yaml:"toast_seconds" koanf:"toast_seconds"`
	OutputDir             string `yaml:"output_dir" koanf:"output_dir"`
}
