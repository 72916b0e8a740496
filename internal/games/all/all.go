// Package all links every game into the registry. Import it for side
// effects.
package all

import (
	_ "github.com/vovakirdan/arcade-hub/internal/games/balloon"
	_ "github.com/vovakirdan/arcade-hub/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-hub/internal/games/invaders"
	_ "github.com/vovakirdan/arcade-hub/internal/games/memory"
	_ "github.com/vovakirdan/arcade-hub/internal/games/pong"
	_ "github.com/vovakirdan/arcade-hub/internal/games/puzzle"
	_ "github.com/vovakirdan/arcade-hub/internal/games/simon"
	_ "github.com/vovakirdan/arcade-hub/internal/games/snake"
	_ "github.com/vovakirdan/arcade-hub/internal/games/tetris"
	_ "github.com/vovakirdan/arcade-hub/internal/games/whackamole"
)

// IDs lists the games in hub order.
var IDs = []string{
	"snake",
	"tetris",
	"pong",
	"breakout",
	"invaders",
	"memory",
	"balloon",
	"puzzle",
	"simon",
	"whackamole",
}
