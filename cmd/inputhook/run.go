// Package main starts the inputhook daemon.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/frudas24/inputhook/internal/config"
	"github.com/frudas24/inputhook/internal/tap"
	"github.com/frudas24/inputhook/internal/winapi"
	"github.com/frudas24/inputhook/layout"
	"github.com/frudas24/inputhook/listener"
	"github.com/frudas24/inputhook/synth"
)

// run wires the daemon and blocks until shutdown.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logStartup(cfg)

	translator, err := layout.New()
	if err != nil {
		return err
	}
	injector, err := synth.NewInjector()
	if err != nil {
		return err
	}

	var tapServer *tap.Server
	broadcast := func(tap.Event) {}
	if cfg.TapEnabled {
		tapServer = tap.NewServer(commandHandler(injector))
		broadcast = tapServer.Broadcast
	}

	keyboard := newKeyboardEvents(translator, broadcast, cfg.LogEvents, cfg.SuppressKeyboard)
	keyboardListener, err := listener.New(keyboard,
		listener.WithSuppress(cfg.SuppressKeyboard),
		listener.WithNotifications(winapi.WM_INPUTLANGCHANGE),
	)
	if err != nil {
		return err
	}

	mouse := newMouseEvents(broadcast, cfg.LogEvents, cfg.SuppressMouse)
	mouseListener, err := listener.New(mouse, listener.WithSuppress(cfg.SuppressMouse))
	if err != nil {
		return err
	}

	if err := keyboardListener.Start(); err != nil {
		return err
	}
	defer stopListener("keyboard", keyboardListener)
	log.Printf("keyboard: hook installed")

	if err := mouseListener.Start(); err != nil {
		return err
	}
	defer stopListener("mouse", mouseListener)
	log.Printf("mouse: hook installed")

	errCh := make(chan error, 3)
	go func() {
		if err := keyboardListener.Wait(); err != nil {
			errCh <- err
		}
	}()
	go func() {
		if err := mouseListener.Wait(); err != nil {
			errCh <- err
		}
	}()

	var server *http.Server
	if tapServer != nil {
		mux := http.NewServeMux()
		mux.Handle("/events", tapServer)
		server = &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: mux,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil {
				errCh <- err
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
	return nil
}

// stopListener shuts one listener down and logs the failure, if any.
func stopListener(name string, l *listener.Runtime) {
	if err := l.Stop(); err != nil {
		log.Printf("%s: shutdown: %v", name, err)
	}
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("inputhook starting")
	log.Printf("suppress keyboard: %v", cfg.SuppressKeyboard)
	log.Printf("suppress mouse: %v", cfg.SuppressMouse)
	if !cfg.TapEnabled {
		log.Printf("event tap: disabled")
		return
	}
	logListenStatus(cfg.ListenAddr)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("event tap: ws://%s/events", net.JoinHostPort(host, port))
}
