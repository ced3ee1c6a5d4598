package models

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LikesResponse carries the counter value after a like.
type LikesResponse struct {
	Likes int `json:"likes"`
}

type ContactResponse struct {
	Message string `json:"message"`
}
