package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// roleRequest is shared by create and update; titles are the natural key,
// length-bounded to [4,10].
type roleRequest struct {
	Title string `json:"title" validate:"required,min=4,max=10"`
}
