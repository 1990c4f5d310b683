package model

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GenreReq is used for both create and update; a genre is just a name.
type GenreReq struct {
	Name string `json:"name" validate:"required,min=3,max=128"`
}
