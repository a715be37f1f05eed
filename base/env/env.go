package env

import (
	"os"
)

// PodName example: tributary-goapi-main-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("POD_NAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api
func AppName() string {
	return os.Getenv("APP_NAME")
}
