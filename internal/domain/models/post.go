package model

type Post struct {
	ID          int64  `json:"id"`
	Titulo      string `json:"titulo"`
	Img         string `json:"img"`
	Descripcion string `json:"descripcion"`
	Likes       int64  `json:"likes"`
}
