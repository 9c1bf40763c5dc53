package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/abhisheksit27/agrovest/internal/client/config"
	"github.com/abhisheksit27/agrovest/internal/client/repositories/accounts"
	"github.com/abhisheksit27/agrovest/internal/client/services"
	"github.com/abhisheksit27/agrovest/internal/client/session"
	"github.com/abhisheksit27/agrovest/internal/client/storage"
	"github.com/abhisheksit27/agrovest/internal/logging"
)

// App holds the wired-up client: session store, weather and diagnosis
// services, and the interactive reader. One instance lives for the whole
// process.
type App struct {
	config     *config.Config
	store      *session.Store
	weather    *services.WeatherClient
	locator    services.Locator
	classifier services.Classifier
	log        logging.Logger
	reader     *bufio.Reader
	db         *sql.DB
}

// NewApp builds the application from config: opens and migrates the local
// database, constructs the session store, seeds the account collection, and
// picks the analysis backend (remote when an endpoint is configured, the
// built-in simulator otherwise).
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{})))

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(accounts.NewSQLiteRepository(db), logger)
	store.EnsureSeedAccount(ctx)

	var classifier services.Classifier
	if c.AnalyzeEndpointAddr != "" {
		classifier = services.NewHTTPClassifier(c.AnalyzeEndpointAddr)
	} else {
		classifier = services.NewSimulatedClassifier(c.AnalysisDelay)
	}

	return &App{
		config:     c,
		store:      store,
		weather:    services.NewWeatherClient(c.WeatherEndpoint, c.WeatherAPIKey, logger),
		locator:    services.NewStaticLocator(c.Latitude, c.Longitude),
		classifier: classifier,
		log:        logger,
		reader:     bufio.NewReader(os.Stdin),
		db:         db,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to AgroVest (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user, ok := a.store.CurrentUser(); ok {
		return "(" + user.Email + ")"
	}
	return ""
}
