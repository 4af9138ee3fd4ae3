package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/logging"
)

const moduleName = logging.Module("crowd-dashboard")

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "campus-crowd-dashboard"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("REVISION"),
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: moduleName,
		LogLevel:      logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:     logging.ParseFormat(os.Getenv("LOG_FORMAT"), env),
	})
}
