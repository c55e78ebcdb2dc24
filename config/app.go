package config

type App struct {
	Port           string `env:"APP_PORT" envDefault:"8080"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"local_dev_secret"`
	LoanPeriodDays int    `env:"LOAN_PERIOD_DAYS" envDefault:"14"`
	Env            string `env:"APP_ENV" envDefault:"dev"`
}
