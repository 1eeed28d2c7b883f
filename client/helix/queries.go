package helix

import "twitchtv/client"

// One query maker per resource. Each feeds the shared builder in a fixed key
// order so identical options always serialize to identical strings.

func getGamesQuery(opts *GamesOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("id", opts.ID)
		qb.Add("name", opts.Name)
	}
	return qb.Query()
}

func getTopGamesQuery(opts *TopGamesOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("first", opts.First)
		qb.Add("after", opts.After)
		qb.Add("before", opts.Before)
	}
	return qb.Query()
}

func getClipsQuery(opts *ClipsOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("broadcaster_id", opts.BroadcasterID)
		qb.Add("game_id", opts.GameID)
		qb.Add("id", opts.ID)
		qb.Add("first", opts.First)
		qb.Add("after", opts.After)
		qb.Add("before", opts.Before)
		qb.Add("started_at", opts.StartedAt)
		qb.Add("ended_at", opts.EndedAt)
	}
	return qb.Query()
}

func getCreateClipQuery(broadcasterId string) string {
	qb := client.NewQueryBuilder()
	qb.Add("broadcaster_id", broadcasterId)
	return qb.Query()
}

func getStreamsQuery(opts *StreamsOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("game_id", opts.GameID)
		qb.Add("user_id", opts.UserID)
		qb.Add("user_login", opts.UserLogin)
		qb.Add("language", opts.Language)
		qb.Add("first", opts.First)
		qb.Add("after", opts.After)
		qb.Add("before", opts.Before)
	}
	return qb.Query()
}

func getStreamTagsQuery(broadcasterId string) string {
	qb := client.NewQueryBuilder()
	qb.Add("broadcaster_id", broadcasterId)
	return qb.Query()
}

func getUsersQuery(opts *UsersOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("id", opts.ID)
		qb.Add("login", opts.Login)
	}
	return qb.Query()
}

func getUserFollowsQuery(opts *UserFollowsOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("from_id", opts.FromID)
		qb.Add("to_id", opts.ToID)
		qb.Add("first", opts.First)
		qb.Add("after", opts.After)
	}
	return qb.Query()
}

func getVideosQuery(opts *VideosOptions) string {
	qb := client.NewQueryBuilder()
	if opts != nil {
		qb.Add("id", opts.ID)
		qb.Add("user_id", opts.UserID)
		qb.Add("game_id", opts.GameID)
		qb.Add("first", opts.First)
		qb.Add("after", opts.After)
		qb.Add("before", opts.Before)
		qb.Add("language", opts.Language)
		qb.Add("period", opts.Period)
		qb.Add("sort", opts.Sort)
		qb.Add("type", opts.Type)
	}
	return qb.Query()
}
