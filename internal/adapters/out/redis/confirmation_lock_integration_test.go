package redis_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	lock "myfood/internal/adapters/out/redis"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type ConfirmationLockIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (suite *ConfirmationLockIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *ConfirmationLockIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *ConfirmationLockIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ConfirmationLockIntegrationTestSuite) TestAcquire_SecondCallerLoses() {
	ctx := context.Background()
	l := lock.NewConfirmationLock(suite.client, time.Minute, slog.Default())

	token, ok, err := l.Acquire(ctx, 1)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.NotEmpty(token)

	_, ok, err = l.Acquire(ctx, 1)
	suite.Require().NoError(err)
	suite.False(ok)

	// other orders are independent
	_, ok, err = l.Acquire(ctx, 2)
	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *ConfirmationLockIntegrationTestSuite) TestRelease_FreesTheLock() {
	ctx := context.Background()
	l := lock.NewConfirmationLock(suite.client, time.Minute, slog.Default())

	token, ok, err := l.Acquire(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().True(ok)

	suite.Require().NoError(l.Release(ctx, 7, token))

	_, ok, err = l.Acquire(ctx, 7)
	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *ConfirmationLockIntegrationTestSuite) TestRelease_WithForeignTokenKeepsTheLock() {
	ctx := context.Background()
	l := lock.NewConfirmationLock(suite.client, time.Minute, slog.Default())

	_, ok, err := l.Acquire(ctx, 3)
	suite.Require().NoError(err)
	suite.Require().True(ok)

	suite.Require().NoError(l.Release(ctx, 3, "someone-else"))

	_, ok, err = l.Acquire(ctx, 3)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *ConfirmationLockIntegrationTestSuite) TestLockExpires() {
	ctx := context.Background()
	l := lock.NewConfirmationLock(suite.client, 200*time.Millisecond, slog.Default())

	_, ok, err := l.Acquire(ctx, 9)
	suite.Require().NoError(err)
	suite.Require().True(ok)

	suite.Eventually(func() bool {
		_, acquired, acquireErr := l.Acquire(ctx, 9)
		return acquireErr == nil && acquired
	}, 3*time.Second, 50*time.Millisecond)
}

func TestConfirmationLockIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConfirmationLockIntegrationTestSuite))
}
