package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/tower-client/internal/config"
	"github.com/jwebster45206/tower-client/internal/events"
	"github.com/jwebster45206/tower-client/internal/logger"
	redisstore "github.com/jwebster45206/tower-client/internal/storage"
	"github.com/jwebster45206/tower-client/internal/tui"
	"github.com/jwebster45206/tower-client/pkg/actor"
	"github.com/jwebster45206/tower-client/pkg/layout"
	"github.com/jwebster45206/tower-client/pkg/session"
	"github.com/jwebster45206/tower-client/pkg/storage"
	"github.com/jwebster45206/tower-client/pkg/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closer.Close() // Ignore error in defer
	}()

	log.Info("Starting tower client",
		"environment", cfg.Environment,
		"redis", cfg.RedisURL != "",
		"default_panel", cfg.DefaultPanel)

	store, publisher, err := openStorage(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not connect to Redis: %v\nUnset TOWER_REDIS_URL to play without saving.\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing storage connection", "error", err)
		}
	}()

	ls := layout.New(cfg.Drawer)
	sess, m, err := resumeSession(cfg, store, ls, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resume session: %v\n", err)
		os.Exit(1)
	}
	log = logger.WithSession(log, sess.ID)

	pc, err := loadPC(cfg.PCFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load character: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(tui.Deps{
		Layout:           ls,
		World:            m,
		PC:               pc,
		Store:            store,
		Publisher:        publisher,
		Logger:           log,
		SessionID:        sess.ID,
		MobileBreakpoint: cfg.MobileBreakpoint,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start UI: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error("Program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session %s saved. Resume with TOWER_SESSION_ID=%s\n", sess.ID, sess.ID)
}

// openStorage uses Redis when a URL is configured and an in-memory store
// otherwise. Events are only published with Redis.
func openStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, events.Publisher, error) {
	if cfg.RedisURL == "" {
		log.Info("No Redis URL configured, sessions will not outlive the process")
		return storage.NewMemoryStorage(), nil, nil
	}

	rs, err := redisstore.NewRedisStorage(cfg.RedisURL, cfg.SessionTTL, log)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := rs.WaitForConnection(ctx, 5, 2*time.Second); err != nil {
		_ = rs.Close()
		return nil, nil, err
	}
	log.Info("Storage connection established successfully")

	return rs, events.NewBroadcaster(rs.Client(), log), nil
}

// resumeSession restores cfg.SessionID when it is set and known, and starts
// a new session on the configured panel otherwise.
func resumeSession(cfg *config.Config, store storage.Storage, ls *layout.State, log *slog.Logger) (*session.Session, *world.Map, error) {
	sess := session.New()

	if cfg.SessionID != "" {
		id, err := uuid.Parse(cfg.SessionID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid session id %q: %w", cfg.SessionID, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		saved, err := store.LoadSession(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if saved != nil {
			m, err := saved.Restore(ls)
			if err != nil {
				return nil, nil, err
			}
			log.Info("Resumed session", "session_id", id.String(), "floor", saved.FloorID, "area", saved.AreaID)
			return saved, m, nil
		}
		log.Warn("Session not found, starting fresh", "session_id", id.String())
		sess.ID = id
	}

	sess.Panel = cfg.DefaultPanel
	m, err := sess.Restore(ls)
	if err != nil {
		return nil, nil, err
	}
	return sess, m, nil
}

func loadPC(path string) (*actor.PC, error) {
	if path == "" {
		return actor.NewPCFromSpec(actor.DefaultPCSpec())
	}
	return actor.LoadPC(path)
}
