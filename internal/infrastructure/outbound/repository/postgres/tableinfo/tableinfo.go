package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn          = "id"
	PostTituloColumn      = "titulo"
	PostImgColumn         = "img"
	PostDescripcionColumn = "descripcion"
	PostLikesColumn       = "likes"
)

// PostColumns is the column order every post query selects and scans.
var PostColumns = []string{
	PostIDColumn,
	PostTituloColumn,
	PostImgColumn,
	PostDescripcionColumn,
	PostLikesColumn,
}
