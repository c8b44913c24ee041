package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/util"
)

func provideCoreConfig(config util.Config) core.Config {
	return config.Core()
}

func provideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
