package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dlist/client"
	"dlist/config"
	"dlist/server"
)

const defaultConfigPath = "config.yaml"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s server|client (config path from $CONFIG, default %s)\n", os.Args[0], defaultConfigPath)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	configPath := os.Getenv("CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config %s: %v\n", configPath, err)
		os.Exit(1)
	}

	var run func() error
	var cancel func()
	switch os.Args[1] {
	case "server":
		s, err := server.NewServer(conf)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		run, cancel = s.StartServer, s.Cancel
	case "client":
		cm, err := client.NewClientsManager(conf)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		run, cancel = cm.ListenClientActions, cm.Cancel
	default:
		usage()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
