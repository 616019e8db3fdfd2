package main

import (
	"flag"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/mux"

	"github.com/kevinxiao27/sortvis/internal/config"
)

func main() {
	configPath := flag.String("config", "", "config file (default ./"+config.DefaultFile+")")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Exitf("config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	server := NewServer(cfg)

	r := mux.NewRouter()
	server.Routes(r)

	glog.Infof("replay server listening on %s", cfg.Server.Addr)
	glog.Infof("websocket: ws://localhost%s/ws?algorithm=merge&size=64", cfg.Server.Addr)
	glog.Fatal(http.ListenAndServe(cfg.Server.Addr, r))
}
