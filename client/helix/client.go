package helix

import (
	"log/slog"
	"net/http"

	httpclient "twitchtv/http_client"
)

const baseHttpUrl = "https://api.twitch.tv/helix"

// HelixClient is the Twitch Helix resource surface. Every request carries the
// application client id and a bearer token; both are opaque strings supplied
// by the caller.
type HelixClient struct {
	clientId   string
	httpClient *httpclient.HttpClient
}

func NewHelixClient(clientId string, token string) *HelixClient {
	headers := make(http.Header)
	headers.Set("Client-Id", clientId)
	headers.Set("Authorization", "Bearer "+token)
	httpClient := httpclient.NewHttpClient(baseHttpUrl)
	httpClient.SetHeaders(headers)
	return &HelixClient{
		clientId:   clientId,
		httpClient: httpClient,
	}
}

// Games fetches game records by id or name.
func (h *HelixClient) Games(opts *GamesOptions) (*GamesResponse, error) {
	var games GamesResponse
	err := h.httpClient.Get("/games"+getGamesQuery(opts), &games)
	if err != nil {
		slog.Error("[HelixClient] Failed to get games", "error", err)
		return nil, err
	}
	return &games, nil
}

// TopGames fetches the current most-watched games.
func (h *HelixClient) TopGames(opts *TopGamesOptions) (*GamesResponse, error) {
	var games GamesResponse
	err := h.httpClient.Get("/games/top"+getTopGamesQuery(opts), &games)
	if err != nil {
		slog.Error("[HelixClient] Failed to get top games", "error", err)
		return nil, err
	}
	return &games, nil
}

// Clips fetches clips by broadcaster, game or clip id.
func (h *HelixClient) Clips(opts *ClipsOptions) (*ClipsResponse, error) {
	var clips ClipsResponse
	err := h.httpClient.Get("/clips"+getClipsQuery(opts), &clips)
	if err != nil {
		slog.Error("[HelixClient] Failed to get clips", "error", err)
		return nil, err
	}
	return &clips, nil
}

// CreateClip starts clip creation on the broadcaster's live stream and
// returns the edit URL.
func (h *HelixClient) CreateClip(broadcasterId string) (*CreateClipResponse, error) {
	var clip CreateClipResponse
	err := h.httpClient.Post("/clips"+getCreateClipQuery(broadcasterId), &clip)
	if err != nil {
		slog.Error("[HelixClient] Failed to create clip", "error", err)
		return nil, err
	}
	return &clip, nil
}

// Streams fetches live streams filtered by game, user or language.
func (h *HelixClient) Streams(opts *StreamsOptions) (*StreamsResponse, error) {
	var streams StreamsResponse
	err := h.httpClient.Get("/streams"+getStreamsQuery(opts), &streams)
	if err != nil {
		slog.Error("[HelixClient] Failed to get streams", "error", err)
		return nil, err
	}
	return &streams, nil
}

// StreamTags fetches the tags set on the broadcaster's channel.
func (h *HelixClient) StreamTags(broadcasterId string) (*StreamTagsResponse, error) {
	var tags StreamTagsResponse
	err := h.httpClient.Get("/streams/tags"+getStreamTagsQuery(broadcasterId), &tags)
	if err != nil {
		slog.Error("[HelixClient] Failed to get stream tags", "error", err)
		return nil, err
	}
	return &tags, nil
}

// Users fetches user records by id or login.
func (h *HelixClient) Users(opts *UsersOptions) (*UsersResponse, error) {
	var users UsersResponse
	err := h.httpClient.Get("/users"+getUsersQuery(opts), &users)
	if err != nil {
		slog.Error("[HelixClient] Failed to get users", "error", err)
		return nil, err
	}
	return &users, nil
}

// UserFollows fetches follow relationships from or to a user.
func (h *HelixClient) UserFollows(opts *UserFollowsOptions) (*UserFollowsResponse, error) {
	var follows UserFollowsResponse
	err := h.httpClient.Get("/users/follows"+getUserFollowsQuery(opts), &follows)
	if err != nil {
		slog.Error("[HelixClient] Failed to get user follows", "error", err)
		return nil, err
	}
	return &follows, nil
}

// Videos fetches videos by id, user or game.
func (h *HelixClient) Videos(opts *VideosOptions) (*VideosResponse, error) {
	var videos VideosResponse
	err := h.httpClient.Get("/videos"+getVideosQuery(opts), &videos)
	if err != nil {
		slog.Error("[HelixClient] Failed to get videos", "error", err)
		return nil, err
	}
	return &videos, nil
}
