package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/rinksidehq/rinkside/external/discord"
	"github.com/rinksidehq/rinkside/external/twitch"
	"github.com/rinksidehq/rinkside/internal/config"
	"github.com/rinksidehq/rinkside/internal/infrastructure/repository/postgres"
	"github.com/rinksidehq/rinkside/internal/interfaces/httpapi"
	"github.com/rinksidehq/rinkside/internal/platform/cache"
	"github.com/rinksidehq/rinkside/internal/platform/logging"
	"github.com/rinksidehq/rinkside/internal/platform/resilience"
	"github.com/rinksidehq/rinkside/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	leagueRepo := postgres.NewLeagueRepository(db)
	seasonRepo := postgres.NewSeasonRepository(db)
	standingRepo := postgres.NewStandingRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	managerRepo := postgres.NewManagerRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)

	twitchClient := twitch.NewClient(twitch.ClientConfig{
		AuthURL:      cfg.TwitchAuthURL,
		APIURL:       cfg.TwitchAPIURL,
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
		Timeout:      cfg.TwitchTimeout,
		MaxRetries:   cfg.TwitchMaxRetries,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TwitchCircuitEnabled,
			FailureThreshold: cfg.TwitchCircuitFailureCount,
			OpenTimeout:      cfg.TwitchCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TwitchCircuitHalfOpenMaxReq,
		},
	})

	discordClient := discord.NewClient(discord.ClientConfig{
		BaseURL:    cfg.DiscordBaseURL,
		BotToken:   cfg.DiscordBotToken,
		GuildID:    cfg.DiscordGuildID,
		Timeout:    cfg.DiscordTimeout,
		MaxRetries: cfg.DiscordMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DiscordCircuitEnabled,
			FailureThreshold: cfg.DiscordCircuitFailureCount,
			OpenTimeout:      cfg.DiscordCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DiscordCircuitHalfOpenMaxReq,
		},
	})

	streamsCache := cache.NewStore(cfg.StreamsCacheTTL)
	eventsCache := cache.NewStore(cfg.EventsCacheTTL)

	leagueSvc := usecase.NewLeagueService(leagueRepo, cfg.DefaultLeagueCode)
	seasonSvc := usecase.NewSeasonService(seasonRepo)
	standingsSvc := usecase.NewStandingsService(seasonRepo, standingRepo)
	streakSvc := usecase.NewStreakService(gameRepo)
	scheduleSvc := usecase.NewScheduleService(seasonRepo, gameRepo)
	teamSvc := usecase.NewTeamService(teamRepo, standingRepo, playerRepo, managerRepo)
	managerSvc := usecase.NewManagerService(managerRepo, standingRepo, gameRepo)
	playerSvc := usecase.NewPlayerService(playerRepo)
	liveStreamSvc := usecase.NewLiveStreamService(managerRepo, seasonRepo, standingRepo, twitchClient, streamsCache, logger)
	eventSvc := usecase.NewEventService(discordClient, eventsCache)

	handler := httpapi.NewHandler(
		leagueSvc,
		seasonSvc,
		standingsSvc,
		streakSvc,
		scheduleSvc,
		teamSvc,
		managerSvc,
		playerSvc,
		liveStreamSvc,
		eventSvc,
		[]*cache.Store{streamsCache, eventsCache},
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
