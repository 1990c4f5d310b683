package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	Env           string `env:"APP_ENV" default:"dev"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationsDir string `env:"MIGRATIONS_DIR" default:"migrations"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RabbitURL     string `env:"RABBITMQ_URL"`
}
