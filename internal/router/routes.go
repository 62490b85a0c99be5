package router

// Route names of the site.
const (
	RouteHome         = "home"
	RouteGames        = "games"
	RouteTetris       = "tetris"
	RoutePong         = "pong"
	RouteMinesweeper  = "minesweeper"
	RouteStickmanHook = "stickman-hook"
	RouteNotFound     = "not-found"
)

// NotFoundTitle is the title metadata that marks the not-found view.
const NotFoundTitle = "404"

// DefaultTable returns the route table of the site.
func DefaultTable() *Table {
	return MustTable(
		Descriptor{Path: "/", Name: RouteHome, View: "HomeView", Title: "Home"},
		Descriptor{Path: "/games", Name: RouteGames, View: "GamesView", Title: "Games"},
		Descriptor{Path: "/games/tetris", Name: RouteTetris, View: "TetrisView", Title: "Tetris"},
		Descriptor{Path: "/games/pong", Name: RoutePong, View: "PongView", Title: "Pong"},
		Descriptor{Path: "/games/minesweeper", Name: RouteMinesweeper, View: "MinesweeperView", Title: "Minesweeper"},
		Descriptor{Path: "/games/stickman-hook", Name: RouteStickmanHook, View: "StickManHookView", Title: "Stickman Hook"},
		Descriptor{Path: WildcardPath, Name: RouteNotFound, View: "NotFoundView", Title: NotFoundTitle},
	)
}
