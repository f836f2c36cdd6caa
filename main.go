package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	addr      = flag.String("addr", ":8080", "HTTP listen address")
	storeKind = flag.String("store", "postgres", "session store: postgres or memory")
	ttl       = flag.Duration("ttl", 24*time.Hour, "delete sessions idle for longer than this")
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(s gameStore, addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler(s)
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open open.
func Open(s gameStore, addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(s, addr, idleConnsClosed)
	<-idleConnsClosed
}

// sessionIdle ends the sessions, and with them their ledgers, that saw no half-move within ttl.
func sessionIdle(s gameStore, ttl time.Duration) error {
	deleted, err := s.deleteIdle(time.Now().Add(-ttl))
	if err != nil {
		return err
	}
	if deleted > 0 {
		log.WithField("count", deleted).Info("deleted idle games")
	}
	return nil
}

func openStore(kind string) (gameStore, error) {
	switch kind {
	case "memory":
		return newMemoryStore(), nil
	case "postgres":
		dbname, ok := os.LookupEnv("PGDATABASE")
		if !ok {
			dbname = "test"
		}
		db, err := openDB(dbname)
		if err != nil {
			return nil, err
		}
		return gormStore{db: db}, nil
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}

func main() {
	flag.Parse()
	s, err := openStore(*storeKind)
	if err != nil {
		log.WithError(err).WithField("store", *storeKind).Fatal("failed to open store")
	}
	defer func() {
		idleError("close store:", s.close())
	}()
	go func() {
		for {
			idleError("session idle complete:", sessionIdle(s, *ttl))
			time.Sleep(time.Minute)
		}
	}()
	Open(s, *addr)
}
