package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ndelacroix/meetings-api/internal/config"
	"github.com/ndelacroix/meetings-api/internal/database"
	"github.com/ndelacroix/meetings-api/pkg/auth"
)

type Server struct {
	router *gin.Engine
	db     *database.Database
	log    *zap.Logger
	port   string
}

// New wires the store, the token manager and the route table. The store
// handle is constructed once here and passed into every handler; there is
// no ambient global.
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.PasswordSalt)

	router := gin.New()
	router.Use(RequestLogger(log), Recovery(log))
	Routes(router, db, tokens, hasher)

	return &Server{router: router, db: db, log: log, port: cfg.Port}, nil
}

func (s *Server) Run() error {
	s.log.Info("server starting", zap.String("port", s.port))
	return s.router.Run(":" + s.port)
}
