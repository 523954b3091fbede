package model

type LikeAction string

const (
	LikeActionLike   LikeAction = "like"
	LikeActionUnlike LikeAction = "unlike"
)

func (a LikeAction) Valid() bool {
	return a == LikeActionLike || a == LikeActionUnlike
}

// Delta is the signed change a like action applies to the counter.
// The store clamps the result to [0, MaxLikes].
func (a LikeAction) Delta() int64 {
	switch a {
	case LikeActionLike:
		return 1
	case LikeActionUnlike:
		return -1
	default:
		return 0
	}
}
