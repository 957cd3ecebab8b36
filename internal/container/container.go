package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/config"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/exchange"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/googleauth"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/kakao"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/tourapi"
	"github.com/tripnote/travel-planner-api/pkg/cache"
	"github.com/tripnote/travel-planner-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	googleClient   *googleauth.Client
	kakaoClient    *kakao.Client
	tourClient     *tourapi.Client
	exchangeClient *exchange.Client
	rateCache      cache.Cache
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetGoogle(c *googleauth.Client) { googleClient = c }
func GetGoogle() *googleauth.Client  { return googleClient }
func SetKakao(c *kakao.Client)       { kakaoClient = c }
func GetKakao() *kakao.Client        { return kakaoClient }
func SetTour(c *tourapi.Client)      { tourClient = c }
func GetTour() *tourapi.Client       { return tourClient }
func SetExchange(c *exchange.Client) { exchangeClient = c }
func GetExchange() *exchange.Client  { return exchangeClient }
func SetRateCache(c cache.Cache)     { rateCache = c }
func GetRateCache() cache.Cache      { return rateCache }
