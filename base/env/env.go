// Package env reads the deployment identity used to tag metrics
package env

import (
	"os"
)

const defaultAppName = "ensagent"

// PodName falls back to the hostname outside kubernetes
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, _ := os.Hostname()
	return host
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: ensagent-api
func AppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return defaultAppName
}
