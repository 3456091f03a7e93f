package models

import "time"

// DateLayout is the wire format for publication and creation dates.
const DateLayout = "2006-01-02"

// UserSummary is the nested user shape inside author projections.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthorSummary is the nested author shape inside post and comment
// projections.
type AuthorSummary struct {
	ID   uint        `json:"id"`
	User UserSummary `json:"user"`
}

// PostSummary is the list-view projection of a post.
type PostSummary struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	PublicationDate string        `json:"publication_date"`
	ImageURL        string        `json:"image_url"`
	Content         string        `json:"content"`
	Approved        bool          `json:"approved"`
	Author          AuthorSummary `json:"author"`
	Category        Category      `json:"category"`
}

// CommentDetail is the serialized comment shape, nested author included.
type CommentDetail struct {
	ID        uint          `json:"id"`
	Post      uint          `json:"post"`
	Author    AuthorSummary `json:"author"`
	Content   string        `json:"content"`
	CreatedOn string        `json:"created_on"`
}

// PostDetail is the single-item projection of a post: the summary fields plus
// tags and the full comment list.
type PostDetail struct {
	PostSummary
	Tags     []Tag           `json:"tags"`
	Comments []CommentDetail `json:"comments"`
}

func newAuthorSummary(p Profile) AuthorSummary {
	return AuthorSummary{
		ID: p.ID,
		User: UserSummary{
			Username:  p.User.Username,
			FirstName: p.User.FirstName,
			LastName:  p.User.LastName,
		},
	}
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NewPostSummary projects a post into its list-view shape. The post's Author
// (with nested User) and Category must be loaded.
func NewPostSummary(p *Post) PostSummary {
	return PostSummary{
		ID:              p.ID,
		Title:           p.Title,
		PublicationDate: formatDate(p.PublicationDate),
		ImageURL:        p.ImageURL,
		Content:         p.Content,
		Approved:        p.Approved,
		Author:          newAuthorSummary(p.Author),
		Category:        p.Category,
	}
}

// NewPostSummaries projects a slice of posts, always returning a non-nil
// slice so list responses serialize as [].
func NewPostSummaries(posts []*Post) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, NewPostSummary(p))
	}
	return summaries
}

// NewCommentDetail projects a comment with its nested author.
func NewCommentDetail(c *Comment) CommentDetail {
	return CommentDetail{
		ID:        c.ID,
		Post:      c.PostID,
		Author:    newAuthorSummary(c.Author),
		Content:   c.Content,
		CreatedOn: formatDate(c.CreatedOn),
	}
}

// NewPostDetail projects a post into its single-item shape, comments and tags
// included.
func NewPostDetail(p *Post) PostDetail {
	detail := PostDetail{
		PostSummary: NewPostSummary(p),
		Tags:        p.Tags,
		Comments:    make([]CommentDetail, 0, len(p.Comments)),
	}
	if detail.Tags == nil {
		detail.Tags = []Tag{}
	}
	for i := range p.Comments {
		detail.Comments = append(detail.Comments, NewCommentDetail(&p.Comments[i]))
	}
	return detail
}
