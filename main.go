package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/config"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/httpserver"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(cfg.WordsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	st, err := openStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open store")
	}
	defer st.Close()

	if err := seed(context.Background(), st); err != nil {
		log.Fatal().Err(err).Msg("failed to seed challenges")
	}

	srv := httpserver.New(st, cfg)
	log.Info().Str("port", cfg.Port).Int("words", words.Stats()).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openStore picks SQLite when a path is configured, memory otherwise.
func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(path)
}

// seed solves the bundled challenges and upserts them, so a changed
// dictionary refreshes stored solutions on the next start.
func seed(ctx context.Context, st store.Store) error {
	list, err := game.SeedChallenges(words.Dictionary())
	if err != nil {
		return err
	}
	for _, c := range list {
		if err := st.SaveChallenge(ctx, c); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(list)).Msg("seeded challenges")
	return nil
}
