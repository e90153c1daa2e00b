package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/uno-online/server/database"
	"github.com/uno-online/server/render"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

type config struct {
	Players  int    `env:"UNO_PLAYERS" envDefault:"2"`
	Seed     int64  `env:"UNO_SEED" envDefault:"0"`
	Strict   bool   `env:"UNO_STRICT" envDefault:"false"`
	DumpJSON bool   `env:"UNO_DUMP_JSON" envDefault:"false"`
	LogLevel string `env:"UNO_LOG_LEVEL" envDefault:"info"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.WithError(err).Fatal("bad environment")
	}
	flag.IntVar(&cfg.Players, "players", cfg.Players, "number of players (2-10)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 means time-based")
	flag.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject illegal plays instead of trusting the driver")
	flag.BoolVar(&cfg.DumpJSON, "dump-json", cfg.DumpJSON, "print the event log as JSON after the game")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Parse()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("bad log level")
	}
	logrus.SetLevel(level)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logrus.WithField("seed", seed).Debug("seeding")

	g := game.NewWithConfig(game.Config{Rand: rng, StrictPlay: cfg.Strict})
	render.Attach(g, os.Stdout)
	database.SaveGame(g)
	defer database.DeleteGame(g.ID().String())

	for i := 0; i < cfg.Players; i++ {
		if !g.AddPlayer(game.NewPlayer(gofakeit.Name())) {
			logrus.Fatalf("could not seat player %d", i+1)
		}
	}
	if !g.Start() {
		logrus.WithField("players", cfg.Players).Fatal("game refused to start, need 2-10 players")
	}

	if err := run(g, rng); err != nil {
		logrus.WithError(err).Fatal("game aborted")
	}

	render.Summary(os.Stdout, g)
	if cfg.DumpJSON {
		data, err := g.MarshalEvents()
		if err != nil {
			logrus.WithError(err).Fatal("could not encode event log")
		}
		fmt.Println(string(data))
	}
}

// run plays every seat on autopilot: first legal card wins, otherwise
// draw until something playable turns up, random color for wilds.
func run(g *game.Game, rng *rand.Rand) error {
	for !g.HasEnded() {
		player := g.CurrentPlayer()
		playable := player.ValidCards(g.CurrentCard())

		var cardToPlay *card.Card
		if len(playable) == 0 {
			drawn, err := g.PlayerDrawsACard(player, false)
			if err != nil {
				return err
			}
			if !drawn.IsValidAgainst(g.CurrentCard()) {
				continue
			}
			cardToPlay = drawn
		} else {
			cardToPlay = playable[0]
		}

		chosen := color.None
		if cardToPlay.IsWild() {
			chosen = color.Random(rng)
		}
		if err := g.PlayerPlaysACard(player, cardToPlay, chosen); err != nil {
			return err
		}
	}
	return nil
}
