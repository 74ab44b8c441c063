package main

import (
	"errors"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"chebplace/internal/auth"
	"chebplace/internal/db"
	"chebplace/internal/domain/storage"
	"chebplace/internal/env"
	"chebplace/internal/mailer"
	"chebplace/internal/media"
	"chebplace/internal/moderation"
	"chebplace/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
		TimeFrame:            env.GetDuration("RATELIMITER_TIMEFRAME", time.Minute),
		Enabled:              env.GetBool("RATELIMITER_ENABLED", true),
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Cheb Place API
//	@description	Backend of the Cheb Place map: places, moderated reviews, events, gallery and feedback.

//	@BasePath					/
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key
//	@securityDefinitions.basic	BasicAuth

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	dbAddr, err := env.MustString("DB_ADDR")
	if err != nil {
		log.Fatal(err)
	}

	cfg := config{
		addr:        env.GetString("ADDR", ":8080"),
		env:         env.GetString("ENV", "development"),
		apiURL:      env.GetString("EXTERNAL_URL", "localhost:8080"),
		corsOrigins: strings.Split(env.GetString("CORS_ALLOWED_ORIGIN", "https://*,http://*"), ","),
		db: dbConfig{
			addr:         dbAddr,
			maxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			maxIdleTime:  env.GetDuration("DB_MAX_IDLE_TIME", 15*time.Minute),
			migrate:      env.GetBool("DB_MIGRATE", true),
		},
		auth: authConfig{
			basic: basicConfig{
				user: env.GetString("AUTH_BASIC_USER", ""),
				pass: env.GetString("AUTH_BASIC_PASS", ""),
			},
			admin: adminConfig{
				mode:     env.GetString("ADMIN_AUTH_MODE", "static"),
				key:      env.GetString("ADMIN_API_KEY", ""),
				keyHash:  env.GetString("ADMIN_API_KEY_HASH", ""),
				iss:      env.GetString("ADMIN_TOKEN_ISSUER", "chebplace"),
				tokenExp: env.GetDuration("ADMIN_TOKEN_EXP", 12*time.Hour),
			},
		},
		media: mediaConfig{
			backend:          env.GetString("MEDIA_BACKEND", "local"),
			root:             env.GetString("MEDIA_ROOT", "./static"),
			publicPrefix:     env.GetString("MEDIA_PUBLIC_PREFIX", "/static"),
			cloudinaryURL:    env.GetString("CLOUDINARY_URL", ""),
			cloudinaryFolder: env.GetString("CLOUDINARY_FOLDER", "chebplace"),
		},
		mail: mailConfig{
			smtp: smtpConfig{
				host: env.GetString("SMTP_HOST", ""),
				port: env.GetInt("SMTP_PORT", 587),
				user: env.GetString("SMTP_USER", ""),
				pass: env.GetString("SMTP_PASS", ""),
			},
			fromEmail:   env.GetString("MAIL_FROM", ""),
			notifyEmail: env.GetString("FEEDBACK_NOTIFY_EMAIL", ""),
		},
		rateLimiter: LoadRateLimiterConfig(),
		reviewCache: moderation.Config{
			CacheSize: env.GetInt("REVIEW_CACHE_SIZE", 256),
			CacheTTL:  env.GetDuration("REVIEW_CACHE_TTL", time.Minute),
		},
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	if cfg.db.migrate {
		v, err := db.Migrate(cfg.db.addr)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Infow("database schema is up to date", "version", v)
	}

	pool, err := db.New(db.Config{
		Addr:        cfg.db.addr,
		MaxConns:    int32(cfg.db.maxOpenConns),
		MaxIdleTime: cfg.db.maxIdleTime,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	//storage
	store := storage.NewContainer(pool)

	// Media
	files, local, err := newMediaStore(cfg.media)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("media store configured", "backend", cfg.media.backend)

	// Authorizer
	authz, tokens, err := newAuthorizer(cfg.auth.admin)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("admin authorization configured", "mode", cfg.auth.admin.mode)

	// Mailer is optional; without SMTP settings feedback is only stored.
	var mail mailer.Client
	if cfg.mail.smtp.host != "" {
		smtp, err := mailer.NewSMTP(cfg.mail.smtp.host, cfg.mail.smtp.port, cfg.mail.smtp.user, cfg.mail.smtp.pass, cfg.mail.fromEmail)
		if err != nil {
			logger.Fatal(err)
		}
		mail = smtp
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	defer rateLimiter.Close()

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		moderation:  moderation.New(store, files, authz, logger, cfg.reviewCache),
		media:       files,
		localMedia:  local,
		mailer:      mail,
		rateLimiter: rateLimiter,
		tokens:      tokens,
	}

	//Metrics collected http://localhost:8080/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]any{
			"acquired_conns": s.AcquiredConns(),
			"idle_conns":     s.IdleConns(),
			"total_conns":    s.TotalConns(),
			"max_conns":      s.MaxConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func newMediaStore(cfg mediaConfig) (media.Store, *media.LocalStore, error) {
	switch cfg.backend {
	case "local":
		local, err := media.NewLocalStore(cfg.root, cfg.publicPrefix)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	case "cloudinary":
		cld, err := media.NewCloudinaryStore(cfg.cloudinaryURL, cfg.cloudinaryFolder)
		if err != nil {
			return nil, nil, err
		}
		return cld, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown MEDIA_BACKEND %q", cfg.backend)
	}
}

func newAuthorizer(cfg adminConfig) (auth.Authorizer, *auth.JWTAuthorizer, error) {
	switch cfg.mode {
	case "static":
		if cfg.key == "" {
			return nil, nil, errors.New("ADMIN_API_KEY must be set")
		}
		return auth.NewStaticKeyAuthorizer(cfg.key), nil, nil
	case "bcrypt":
		a, err := auth.NewHashedKeyAuthorizer(cfg.keyHash)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid ADMIN_API_KEY_HASH: %w", err)
		}
		return a, nil, nil
	case "jwt":
		a, err := auth.NewJWTAuthorizer(cfg.key, cfg.iss, cfg.tokenExp)
		if err != nil {
			return nil, nil, err
		}
		return a, a, nil
	default:
		return nil, nil, fmt.Errorf("unknown ADMIN_AUTH_MODE %q", cfg.mode)
	}
}
