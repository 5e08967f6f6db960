package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kyystore-api/config"
	"github.com/oksasatya/kyystore-api/internal/domain/repository"
	"github.com/oksasatya/kyystore-api/internal/events"
	"github.com/oksasatya/kyystore-api/pkg/fieldcrypt"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	envelope   *fieldcrypt.Envelope

	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	publisher   events.Publisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger != nil {
		return logger
	}
	return helpers.NewDiscardLogger()
}
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
func SetEnvelope(e *fieldcrypt.Envelope) { envelope = e }
func GetEnvelope() *fieldcrypt.Envelope  { return envelope }

func SetUserRepo(r repository.UserRepository)       { userRepo = r }
func GetUserRepo() repository.UserRepository        { return userRepo }
func SetProductRepo(r repository.ProductRepository) { productRepo = r }
func GetProductRepo() repository.ProductRepository  { return productRepo }
func SetPublisher(p events.Publisher)               { publisher = p }
func GetPublisher() events.Publisher {
	if publisher != nil {
		return publisher
	}
	return events.Nop{}
}
