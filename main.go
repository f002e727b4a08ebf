package main

import (
	"flag"
	"net/http"
	"os"

	"fluidlevel/config"
	"fluidlevel/server"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var confPath = flag.String("conf", "./conf/config.ini", "配置文件路径")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func setupLog(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("日志级别无效，使用 info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
}

func main() {
	flag.Parse()
	cfg, err := config.Load(*confPath)
	if err != nil {
		log.WithError(err).Warn("使用默认配置")
		cfg = config.Default()
	}
	setupLog(cfg)

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg, upgrader)
	if err := s.Serve(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
