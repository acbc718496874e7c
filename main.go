package main

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alt25-ops/ESL-Pictionary/internal/board"
	"github.com/alt25-ops/ESL-Pictionary/internal/config"
	"github.com/alt25-ops/ESL-Pictionary/internal/game"
	"github.com/alt25-ops/ESL-Pictionary/internal/shared/logger"
	"github.com/alt25-ops/ESL-Pictionary/internal/words"
)

const (
	boardWidth  = 800
	boardHeight = 500
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(200, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
	}))

	return r
}

func newWordSource(ctx context.Context, apiKey string) game.WordSource {
	if apiKey == "" {
		logger.Warning("GEMINI_API_KEY not set, using the offline word list")
		return words.NewOffline()
	}
	gemini, err := words.NewGemini(ctx, apiKey)
	if err != nil {
		logger.Warningf("Gemini client unavailable, using the offline word list: %v", err)
		return words.NewOffline()
	}
	return gemini
}

func main() {
	cfg := config.Load()
	if cfg.Debug {
		logger.SetDebug()
	}

	source := newWordSource(context.Background(), cfg.GeminiAPIKey)

	controller := game.NewController(source, game.NewTickerGen(), game.NewIdGen(), game.NewRoomCodeGen())
	defer controller.Close()

	surface := board.New(boardWidth, boardHeight, nil)
	gameHandler := game.NewGameHandler(controller, surface)

	r := CreateServer(cfg.AllowedOrigins)
	gameHandler.RegisterRoutes(r.Group("/game"))

	logger.Infof("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
