package settings

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Runner Runner `mapstructure:"runner"`
	Types  []Type `mapstructure:"types" validate:"dive"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Runner is the configuration for the script runner
type Runner struct {
	Parallelism int  `mapstructure:"parallelism" validate:"gte=0"` // 0 means unlimited
	FailFast    bool `mapstructure:"fail_fast"`
}

// Type aliases an additional name onto a registered type, e.g. "text" -> "string".
type Type struct {
	Name  string `mapstructure:"name" validate:"required"`
	Alias string `mapstructure:"alias" validate:"required"`
}
