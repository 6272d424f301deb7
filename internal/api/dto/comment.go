package dto

type CommentCreateDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

type CommentUpdateDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"postId"`
	Content   string    `json:"content"`
	Author    AuthorDTO `json:"author"`
	CreatedAt string    `json:"createdAt"`
}
