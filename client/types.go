package client

// Pagination carries the cursor for a follow-up request. The client keeps no
// paging state of its own; callers thread the cursor back through the After
// option of the next call.
type Pagination struct {
	Cursor string `json:"cursor"`
}

// Envelope is the common Helix response shape: a data list plus an optional
// pagination cursor.
type Envelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
