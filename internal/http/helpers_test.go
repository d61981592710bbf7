package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/mergington/announcements-service/internal/domain"
	api "github.com/mergington/announcements-service/internal/http"
	"github.com/mergington/announcements-service/internal/log"
	"github.com/mergington/announcements-service/internal/queue"
	"github.com/mergington/announcements-service/internal/repo"
	"github.com/mergington/announcements-service/internal/service"
)

type testEnv struct {
	T      *testing.T
	Ctx    context.Context
	Mongo  *mongodb.MongoDBContainer
	Store  *repo.Store
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	mc, err := mongodb.RunContainer(ctx,
		testcontainers.WithImage("mongo:6"),
	)
	if err != nil {
		t.Fatalf("mongo container: %v", err)
	}

	uri, err := mc.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("mongo uri: %v", err)
	}

	// zap in dev mode for tests
	if _, err := log.Init(false); err != nil {
		t.Fatalf("log init: %v", err)
	}

	store, err := repo.NewStore(ctx, uri, "announcements_test")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatal(err)
	}

	// the one known credential for these tests
	if err := store.UpsertTeacher(ctx, &domain.Teacher{
		Username:    "mrodriguez",
		DisplayName: "Ms. Rodriguez",
		Role:        "teacher",
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}

	svc := service.New(store, store)
	h := api.NewHandler(store, svc, queue.NewNoop(), nil, 0) // no redis, limiter off

	gin.SetMode(gin.TestMode)
	r := api.NewRouter(h)

	return &testEnv{T: t, Ctx: ctx, Mongo: mc, Store: store, Router: r}
}

func (e *testEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Client.Disconnect(e.Ctx)
	}
	if e.Mongo != nil {
		_ = e.Mongo.Terminate(e.Ctx)
	}
}
