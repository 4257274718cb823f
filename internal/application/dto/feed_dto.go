package dto

import "time"

// CreatePostRequest entrada para publicar.
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// PostResponse salida de un post del feed.
type PostResponse struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	AuthorImage   string    `json:"author_image"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	Likes         []string  `json:"likes"`
	CommentsCount int       `json:"comments_count"`
}

// ToggleLikeResponse estado resultante del toggle para que la UI confirme
// (o corrija) su actualización optimista.
type ToggleLikeResponse struct {
	PostID    string `json:"post_id"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"like_count"`
}
