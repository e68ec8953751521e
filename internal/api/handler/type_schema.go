package handler

// typeRequest is shared by create and update; titles are the natural key,
// length-bounded to [5,25].
type typeRequest struct {
	Title string `json:"title" validate:"required,min=5,max=25"`
}
