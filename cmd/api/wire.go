//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/agent"
	"github.com/totegamma/timeline/x/data"
	"github.com/totegamma/timeline/x/post"
	"github.com/totegamma/timeline/x/staleness"
	"github.com/totegamma/timeline/x/timeline"
	"github.com/totegamma/timeline/x/user"
	"github.com/totegamma/timeline/x/util"
)

var userServiceProvider = wire.NewSet(user.NewService, user.NewRepository)
var timelineServiceProvider = wire.NewSet(timeline.NewService, timeline.NewRepository, data.NewService)
var postServiceProvider = wire.NewSet(post.NewService, post.NewRepository, staleness.NewResolver, timelineServiceProvider, userServiceProvider)

func SetupDataService(repository data.Repository) core.DataService {
	wire.Build(data.NewService)
	return nil
}

func SetupUserService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, clock core.Clock) core.UserService {
	wire.Build(userServiceProvider)
	return nil
}

func SetupTimelineService(db *gorm.DB, mc *memcache.Client, repository data.Repository, clock core.Clock) core.TimelineService {
	wire.Build(timelineServiceProvider)
	return nil
}

func SetupPostService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, repository data.Repository, clock core.Clock, config util.Config) core.PostService {
	wire.Build(postServiceProvider, provideCoreConfig)
	return nil
}

func SetupAgent(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, repository data.Repository, clock core.Clock, config util.Config) core.AgentService {
	wire.Build(agent.NewAgent, postServiceProvider, provideCoreConfig, provideRegisterer)
	return nil
}
