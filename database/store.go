// Package database keeps the in-memory registry of live games, so
// inspectors and post-game tooling can look a game up by id while its
// driver runs it.
package database

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/sirupsen/logrus"

	"github.com/uno-online/server/uno/game"
)

var games = hashmap.New()

// SaveGame registers a game under its id.
func SaveGame(g *game.Game) {
	games.Set(g.ID().String(), g)
	logrus.WithField("game", g.ID().String()).Debug("game registered")
}

// GetGame returns the registered game or nil.
func GetGame(id string) *game.Game {
	if v, ok := games.Get(id); ok {
		return v.(*game.Game)
	}
	return nil
}

func DeleteGame(id string) {
	games.Del(id)
	logrus.WithField("game", id).Debug("game removed")
}

// GetGames lists every registered game in stable id order.
func GetGames() []*game.Game {
	list := make([]*game.Game, 0)
	games.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*game.Game))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID().String() < list[j].ID().String()
	})
	return list
}
