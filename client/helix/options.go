package helix

// Option fields left at their zero value are omitted from the query string.
// Slice fields become repeated keys, one pair per element, in order.

type GamesOptions struct {
	ID   []string
	Name []string
}

type TopGamesOptions struct {
	First  int
	After  string
	Before string
}

type ClipsOptions struct {
	BroadcasterID string
	GameID        string
	ID            []string
	First         int
	After         string
	Before        string
	StartedAt     string
	EndedAt       string
}

type StreamsOptions struct {
	GameID    []string
	UserID    []string
	UserLogin []string
	Language  []string
	First     int
	After     string
	Before    string
}

type UsersOptions struct {
	ID    []string
	Login []string
}

type UserFollowsOptions struct {
	FromID string
	ToID   string
	First  int
	After  string
}

type VideosOptions struct {
	ID       []string
	UserID   string
	GameID   string
	First    int
	After    string
	Before   string
	Language string
	Period   string
	Sort     string
	Type     string
}
