package main

import (
	_ "embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/logging"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

// pageData fills the landing page.
type pageData struct {
	SSHHost  string
	SSHPort  string
	Controls []control
}

type control struct {
	Action string
	Keys   string
}

var controls = []control{
	{"Yellow: move", "W A S D"},
	{"Yellow: fire", "F or Space"},
	{"Red: move", "Arrow keys"},
	{"Red: fire", "Enter, / or 0"},
	{"Quit", "Q or Ctrl-C"},
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, settings.LogLevel)

	data := pageData{
		SSHHost:  settings.SSHDisplayHost,
		SSHPort:  settings.SSHPort,
		Controls: controls,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", indexHandler(data, logger))

	addr := net.JoinHostPort(settings.WebHost, settings.WebPort)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func indexHandler(data pageData, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	}
}
