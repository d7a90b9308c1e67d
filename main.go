package main

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"optiedge/auth"
	"optiedge/config"
	"optiedge/database"
	"optiedge/inventory"
	"optiedge/loader"
)

const (
	dbPath     = "./optiedge_inventory.db"
	listenAddr = "127.0.0.1:8080"
	sessionTTL = 12 * time.Hour
)

//go:embed static
var staticFiles embed.FS

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	log.Info().Msg("Connecting to database...")
	dbConn, err := database.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("db open error")
	}
	defer dbConn.Close()

	if err := loader.InitDatabase(dbConn); err != nil {
		log.Fatal().Err(err).Msg("Database initialization failed")
	}

	prefs, err := config.Load(config.DefaultPrefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load prefs file. Using defaults.")
	}

	sessions, err := auth.NewSessions(sessionTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Session setup failed")
	}

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open embedded static files")
	}
	appTemplate, err := template.ParseFS(staticFS, "index.html")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse index.html")
	}

	svc := inventory.NewService(dbConn)

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := appTemplate.ExecuteTemplate(w, "index.html", prefs.Get()); err != nil {
			log.Error().Err(err).Msg("Error executing main template")
		}
	})

	SetupRoutes(mux, svc, prefs, sessions)

	url := "http://" + listenAddr
	log.Info().Str("url", url).Msg("Starting server")
	openBrowser(url)

	if err := http.ListenAndServe(listenAddr, mux); err != nil {
		log.Fatal().Err(err).Msg("server start error")
	}
}

// openBrowser prefers a locally installed Chromium-family browser and falls
// back to the desktop's default handler.
func openBrowser(url string) {
	if _, ok := launcher.LookPath(); ok {
		launcher.Open(url)
		return
	}

	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to open browser")
	}
}
