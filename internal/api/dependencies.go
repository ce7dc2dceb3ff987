package api

import (
	"errors"
	"os"

	"github.com/redis/go-redis/v9"

	"reportgate/internal/common"
	"reportgate/internal/db"
	"reportgate/internal/db/repositories"
	"reportgate/internal/providers"
	"reportgate/internal/services"
)

type Repositories struct {
	Settings    *repositories.SettingsRepository
	Reports     *repositories.ReportRepository
	Keys        *repositories.KeysRepo
	ConfigAdmin *repositories.ConfigAdminRepo
}

type Services struct {
	Report *services.ReportService
	Signer *common.URLSignerService
	Cache  common.CacheInterface
}

type Dependencies struct {
	Repo          *Repositories
	Services      *Services
	Emitter       EmitterConfig
	PublicBaseURL string
}

func InitDependencies() (*Dependencies, error) {

	repos := &Repositories{
		Settings:    repositories.NewSettingsRepository(db.DB),
		Reports:     repositories.NewReportRepository(db.DB),
		Keys:        repositories.NewApiKeysRepo(db.DB),
		ConfigAdmin: repositories.NewConfigAdminRepo(db.PgDB),
	}

	fetcher := providers.NewReportServerProvider()
	reportSvc := services.NewReportService(repos.Settings, repos.Reports, fetcher)

	// Single-use share-token markers: Redis when configured, in-process
	// cache otherwise. The relay pipeline itself never touches either.
	cacheSvc := common.NewCacheService(900, 600)
	var redisClient *redis.Client
	if os.Getenv("REDIS_HOST") != "" {
		redisClient = common.NewRedisClient()
	}

	secret := os.Getenv("SHARE_SIGNING_SECRET")
	if secret == "" {
		return nil, errors.New("SHARE_SIGNING_SECRET is not set")
	}
	signer := common.NewURLSignerService([]byte(secret), redisClient, cacheSvc)

	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:8080"
	}

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Report: reportSvc,
			Signer: signer,
			Cache:  cacheSvc,
		},
		Emitter:       EmitterConfigFromEnv(),
		PublicBaseURL: publicBaseURL,
	}, nil

}
