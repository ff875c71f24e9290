package database

import "fmt"

type PostgresSettings struct {
	User       string `env:"DB_USER" envDefault:"admin"`
	Password   string `env:"DB_PASSWORD" envDefault:"password"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"reward_ledger_db"`
	SSlEnabled bool   `env:"DB_SSL_ENABLED" envDefault:"false"`
}

func (s PostgresSettings) GetUrl() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", s.User, s.Password, s.Host, s.Port, s.DBName)
	if !s.SSlEnabled {
		url += "?sslmode=disable"
	}

	return url
}
