package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/acadgrid/timetable/internal/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}
	logger, err = cfg.Logger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.DataDir+"/generated", 0o755); err != nil {
		logger.Fatal("creating data dir failed", zap.Error(err))
	}

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/timetable", handleListTimetables)
	r.GET("/timetable/:id", handleGetTimetable)
	r.POST("/timetable", handleGenerateTimetable)

	logger.Info("server listening", zap.Int("port", cfg.Port))
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
