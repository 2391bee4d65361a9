package md2html

// Config 应用配置
type Config struct {
	Src   string `mapstructure:"src" toml:"src"`     // markdown source directory
	Debug bool   `mapstructure:"debug" toml:"debug"` // enable debug logging
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	return &Config{}
}
