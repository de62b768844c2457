package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/config"
	"github.com/ratel-online/landlord/network"
	"github.com/ratel-online/landlord/service"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error(err)
		return
	}
	if err := service.Setup(cfg.Table.Players, cfg.Bot.Policy, cfg.Bot.Name); err != nil {
		log.Error(err)
		return
	}
	if cfg.Server.WsAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.Server.WsAddr).Serve())
		})
	}
	log.Error(network.NewTcpServer(cfg.Server.TcpAddr).Serve())
}
