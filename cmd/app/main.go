package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	dbadapter "plume/internal/adapters/database"
	"plume/internal/adapters/httpapi"
	"plume/internal/adapters/memcache"
	redisadapter "plume/internal/adapters/redis"
	"plume/internal/adapters/storage"
	"plume/internal/config"
	commentapp "plume/internal/core/comment/service"
	feedapp "plume/internal/core/feed/service"
	followapp "plume/internal/core/follow/service"
	groupapp "plume/internal/core/group/service"
	postapp "plume/internal/core/post/service"
	userapp "plume/internal/core/user/service"
	"plume/internal/ports/pagecache"
	"plume/internal/workers"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		// Logger is not up yet; zap's example fallback keeps this one line.
		zap.NewExample().Fatal("configuration error", zap.Error(err))
	}

	logger, err := config.NewLogger(settings.Env)
	if err != nil {
		zap.NewExample().Fatal("logger error", zap.Error(err))
	}
	defer logger.Sync()

	db, err := config.OpenDB(settings.DBDSN)
	if err != nil {
		logger.Fatal("database error", zap.Error(err))
	}
	logger.Info("database connected, migrations applied")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The page cache is an explicitly constructed object owned here, never
	// ambient global state.
	var cache pagecache.PageCache
	switch settings.CacheBackend {
	case config.CacheBackendRedis:
		client, err := config.NewRedisClient(ctx, settings)
		if err != nil {
			logger.Fatal("redis error", zap.Error(err))
		}
		defer client.Close()
		cache = redisadapter.NewPageCacheRedis(client)
		logger.Info("page cache backend: redis", zap.String("addr", settings.RedisAddr))
	case config.CacheBackendMemory:
		mem := memcache.NewPageCacheMemory()
		cache = mem
		go workers.NewJanitor(mem, time.Minute, logger).Run(ctx)
		logger.Info("page cache backend: in-process memory")
	}

	images, err := storage.NewLocalImageStore(settings.MediaDir)
	if err != nil {
		logger.Fatal("image store error", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	followRepo := dbadapter.NewFollowRepositoryDatabase(db)

	jwtKey := []byte(settings.JWTSecret)
	userSvc := userapp.NewUserService(userRepo, jwtKey)
	groupSvc := groupapp.NewGroupService(groupRepo)
	postSvc := postapp.NewPostService(postRepo, groupRepo, commentRepo, images, logger)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	followSvc := followapp.NewFollowService(followRepo, userRepo, logger)
	feedSvc := feedapp.NewFeedService(postRepo, groupRepo, userRepo, followRepo)

	r := httpapi.SetupRoutes(userSvc, groupSvc, postSvc, commentSvc, followSvc, feedSvc, cache, jwtKey, logger)

	logger.Info("listening", zap.String("port", settings.AppPort))
	if err := r.Run(":" + settings.AppPort); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
