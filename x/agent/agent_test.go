package agent

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/core/mock"
	"github.com/totegamma/timeline/internal/testutil"
	"github.com/totegamma/timeline/x/util"
)

type fixture struct {
	agent    *agent
	data     *mock_core.MockDataService
	post     *mock_core.MockPostService
	timeline *mock_core.MockTimelineService
	user     *mock_core.MockUserService
}

func newFixture(t *testing.T, ctrl *gomock.Controller, config util.Config) fixture {
	f := fixture{
		data:     mock_core.NewMockDataService(ctrl),
		post:     mock_core.NewMockPostService(ctrl),
		timeline: mock_core.NewMockTimelineService(ctrl),
		user:     mock_core.NewMockUserService(ctrl),
	}
	f.agent = NewAgent(nil, f.data, f.post, f.timeline, f.user, config, prometheus.NewRegistry()).(*agent)
	return f
}

func TestHandleUserDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, util.Config{})
	f.post.EXPECT().DetachAuthor(gomock.Any(), uint(7)).Return(int64(3), nil)

	f.agent.handleUserDeleted(context.Background(), "7")
	f.agent.handleUserDeleted(context.Background(), "seven")
}

func TestSweepIfDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := util.Config{Server: util.Server{SweepSchedule: "*/10 * * * *"}}
	f := newFixture(t, ctrl, config)

	ctx := context.Background()
	base := time.Date(2024, 4, 1, 12, 1, 0, 0, time.UTC)
	referenced := map[string]bool{"tag": true}

	gomock.InOrder(
		f.post.EXPECT().DetachMissingAuthors(gomock.Any()).Return(int64(1), nil),
		f.post.EXPECT().ReferencedTags(gomock.Any()).Return(referenced, nil),
		f.data.EXPECT().Sweep(gomock.Any(), referenced, base.Add(9*time.Minute).Add(-sweepGracePeriod)).Return(int64(2), nil),
	)
	// the second run fails on every step and never sweeps without the referenced set
	f.post.EXPECT().DetachMissingAuthors(gomock.Any()).Return(int64(0), errors.New("database is gone"))
	f.post.EXPECT().ReferencedTags(gomock.Any()).Return(nil, errors.New("database is gone"))

	assert.False(t, f.agent.sweepIfDue(ctx, base))
	assert.False(t, f.agent.sweepIfDue(ctx, base.Add(4*time.Minute)))
	assert.True(t, f.agent.sweepIfDue(ctx, base.Add(9*time.Minute)))
	assert.False(t, f.agent.sweepIfDue(ctx, base.Add(10*time.Minute)))

	// a failed run still waits for the next tick
	assert.True(t, f.agent.sweepIfDue(ctx, base.Add(19*time.Minute)))
	assert.False(t, f.agent.sweepIfDue(ctx, base.Add(20*time.Minute)))
}

func TestRefreshMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, util.Config{})
	f.post.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	f.timeline.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	f.user.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("trying to fix..."))
	f.data.EXPECT().Count(gomock.Any()).Return(int64(5), nil)

	f.agent.refreshMetrics(context.Background())

	assert.Equal(t, 3, promtestutil.CollectAndCount(f.agent.resources, "tl_resources_count"))
	assert.Equal(t, float64(3), promtestutil.ToFloat64(f.agent.resources.WithLabelValues("post")))
	assert.Equal(t, float64(2), promtestutil.ToFloat64(f.agent.resources.WithLabelValues("timeline")))
	assert.Equal(t, float64(5), promtestutil.ToFloat64(f.agent.resources.WithLabelValues("blob")))
}

func TestListenUserDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	f := newFixture(t, ctrl, util.Config{})
	f.agent.rdb = rdb

	detached := make(chan uint, 1)
	f.post.EXPECT().DetachAuthor(gomock.Any(), uint(42)).DoAndReturn(func(_ context.Context, id uint) (int64, error) {
		detached <- id
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.agent.listenUserDeleted(ctx)

	assert.Eventually(t, func() bool {
		subs, err := rdb.PubSubNumSub(ctx, core.UserDeletedChannel).Result()
		return err == nil && subs[core.UserDeletedChannel] == 1
	}, 10*time.Second, 50*time.Millisecond)

	err := rdb.Publish(ctx, core.UserDeletedChannel, strconv.Itoa(42)).Err()
	assert.NoError(t, err)

	select {
	case id := <-detached:
		assert.Equal(t, uint(42), id)
	case <-time.After(10 * time.Second):
		t.Fatal("user deletion was not handled")
	}
}

func TestListenUserDeletedRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	// redis is unreachable for the first dials
	var dials atomic.Int32
	flaky := redis.NewClient(&redis.Options{
		Addr: rdb.Options().Addr,
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if dials.Add(1) <= 2 {
				return nil, errors.New("connection refused")
			}
			var dialer net.Dialer
			return dialer.DialContext(ctx, network, addr)
		},
	})
	defer flaky.Close()

	f := newFixture(t, ctrl, util.Config{})
	f.agent.rdb = flaky
	f.agent.listenRetryInterval = 10 * time.Millisecond

	detached := make(chan uint, 1)
	f.post.EXPECT().DetachAuthor(gomock.Any(), uint(43)).DoAndReturn(func(_ context.Context, id uint) (int64, error) {
		detached <- id
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		f.agent.listenUserDeleted(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		subs, err := rdb.PubSubNumSub(ctx, core.UserDeletedChannel).Result()
		return err == nil && subs[core.UserDeletedChannel] == 1
	}, 10*time.Second, 50*time.Millisecond)
	assert.GreaterOrEqual(t, dials.Load(), int32(3))

	err := rdb.Publish(ctx, core.UserDeletedChannel, strconv.Itoa(43)).Err()
	assert.NoError(t, err)

	select {
	case id := <-detached:
		assert.Equal(t, uint(43), id)
	case <-time.After(10 * time.Second):
		t.Fatal("user deletion was not handled")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("listener did not stop")
	}
}
