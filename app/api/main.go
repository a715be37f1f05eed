package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/database/mongoclient"
	"github.com/tributary-xyz/goapi/base/database/redisclient"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/base/metrics"
	bValidator "github.com/tributary-xyz/goapi/base/validator"
	"github.com/tributary-xyz/goapi/domain"
	mmiddleware "github.com/tributary-xyz/goapi/middleware"
	"github.com/tributary-xyz/goapi/service/chain"
	"github.com/tributary-xyz/goapi/service/chain/contract"
	"github.com/tributary-xyz/goapi/service/query"
	"github.com/tributary-xyz/goapi/service/redis"
	hc_delivery "github.com/tributary-xyz/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/tributary-xyz/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/tributary-xyz/goapi/stores/healthcheck/usecase"
	paytoken_repository "github.com/tributary-xyz/goapi/stores/paytoken/repository"
	tributary_delivery "github.com/tributary-xyz/goapi/stores/tributary/delivery/http"
	tributary_repository "github.com/tributary-xyz/goapi/stores/tributary/repository"
	tributary_usecase "github.com/tributary-xyz/goapi/stores/tributary/usecase"

	tributarydomain "github.com/tributary-xyz/goapi/domain/tributary"
)

func init() {
	configFile := pflag.StringP("config", "c", "infra/configs/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)
	mmiddleware.SetupRateLimit(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	rpcs := make(map[int32]string)
	if networks != nil {
		for k := range networks.AllSettings() {
			chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
			rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
			rpcs[chainId] = rpcUrl
		}
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	marketContract := contract.NewTributaryMarket(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := tributary_repository.NewListingRepo(q)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)

	marketAddrs := make(map[domain.ChainId]domain.Address)
	if markets := viper.Sub("markets"); markets != nil {
		for k := range markets.AllSettings() {
			chainId := domain.ChainId(markets.GetInt32(fmt.Sprintf("%s.chainId", k)))
			marketAddrs[chainId] = domain.Address(markets.GetString(fmt.Sprintf("%s.address", k)))
		}
	}

	hc := hc_usecase.New(hcRepo)
	tributaryUC := tributary_usecase.New(&tributary_usecase.TributaryUseCaseCfg{
		ListingRepo:  listingRepo,
		PayTokenRepo: paytokenRepo,
		FeeConfig: tributarydomain.FeeConfig{
			PlatformFeeBps: viper.GetInt64("fees.platformBps"),
			CreatorFeeBps:  viper.GetInt64("fees.creatorBps"),
		},
		QuoteTTL:    viper.GetDuration("quote.ttl"),
		Market:      marketContract,
		MarketAddrs: marketAddrs,
	})
	indexerUC := tributary_usecase.NewIndexer(&tributary_usecase.IndexerUseCaseCfg{
		ListingRepo: listingRepo,
		Market:      marketContract,
	})

	hc_delivery.New(e, hc)
	tributary_delivery.New(e, tributaryUC)

	stopRefresh := startListingRefresh(context, indexerUC)
	defer stopRefresh()

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// startListingRefresh reconciles configured markets against chain state on
// a fixed interval. Returns a stop func for shutdown.
func startListingRefresh(context ctx.Ctx, indexer tributarydomain.IndexerUseCase) func() {
	markets := viper.Sub("markets")
	if markets == nil {
		return func() {}
	}

	interval := viper.GetDuration("refresh.interval")
	if interval == 0 {
		interval = time.Minute
	}

	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	refresh := func() {
		for k := range markets.AllSettings() {
			chainId := domain.ChainId(markets.GetInt32(fmt.Sprintf("%s.chainId", k)))
			marketAddr := domain.Address(markets.GetString(fmt.Sprintf("%s.address", k)))
			token := domain.Address(markets.GetString(fmt.Sprintf("%s.token", k)))
			if _, err := indexer.RefreshListings(context, chainId, marketAddr, token); err != nil {
				context.WithField("err", err).Warn("listing refresh failed")
			}
		}
	}

	go func() {
		refresh()
		for {
			select {
			case <-ticker.C:
				refresh()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
