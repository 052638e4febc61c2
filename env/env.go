package env

import (
	"os"
)

type convertible interface {
	~[]byte | ~string
}

var (
	HS256_SECRET []byte
	DB_CONN      string
	APP_PORT     string
)

func initEnv[T convertible](dst *T, key string) {
	v := os.Getenv(key)
	if v == "" {
		os.Exit(1)
	}
	*dst = T(v)
}

func init() {
	initEnv(&HS256_SECRET, "HS256_SECRET")
	initEnv(&DB_CONN, "DB_CONN")
	initEnv(&APP_PORT, "APP_PORT")
}
