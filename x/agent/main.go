// Package agent runs some scheduled tasks
package agent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/util"
)

var tracer = otel.Tracer("agent")

type agent struct {
	rdb       *redis.Client
	data      core.DataService
	post      core.PostService
	timeline  core.TimelineService
	user      core.UserService
	config    util.Config
	resources *prometheus.GaugeVec

	mu        sync.Mutex
	nextSweep time.Time

	listenRetryInterval time.Duration
}

// NewAgent creates a new agent. The resource gauges are registered to registerer.
func NewAgent(
	rdb *redis.Client,
	data core.DataService,
	post core.PostService,
	timeline core.TimelineService,
	user core.UserService,
	config util.Config,
	registerer prometheus.Registerer,
) core.AgentService {
	resources := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tl_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	registerer.MustRegister(resources)

	return &agent{
		rdb:       rdb,
		data:      data,
		post:      post,
		timeline:  timeline,
		user:      user,
		config:    config,
		resources: resources,

		listenRetryInterval: time.Second,
	}
}

// Boot starts agent
func (a *agent) Boot() {
	slog.Info("agent start!")

	go a.listenUserDeleted(context.Background())

	ticker60 := time.NewTicker(60 * time.Second)
	go func() {
		for {
			select {
			case now := <-ticker60.C:
				ctx, span := tracer.Start(context.Background(), "Agent.Boot.Sweep")
				a.sweepIfDue(ctx, now)
				span.End()
			}
		}
	}()

	ticker15 := time.NewTicker(15 * time.Second)
	go func() {
		for {
			select {
			case <-ticker15.C:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				ctx, span := tracer.Start(ctx, "Agent.Boot.RefreshMetrics")
				a.refreshMetrics(ctx)
				span.End()
				cancel()
			}
		}
	}()
}
