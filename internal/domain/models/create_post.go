package model

import "math"

// MaxLikes is the largest counter value the posts table can hold.
const MaxLikes int64 = math.MaxInt32

type CreatePostDTO struct {
	Titulo      string `json:"titulo" validate:"required"`
	Img         string `json:"img" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Likes       int64  `json:"likes" validate:"gte=0,lte=2147483647"`
}
