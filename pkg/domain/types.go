package domain

type PostType string

const (
	PostTypeArticle PostType = "article"
	PostTypeThesis  PostType = "thesis"
	PostTypeBook    PostType = "book"
)

// Valid reports whether t is one of the known post types.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeArticle, PostTypeThesis, PostTypeBook:
		return true
	}
	return false
}

// User is the single locally authenticated actor.
type User struct {
	ID           string `json:"id" yaml:"id"`
	Email        string `json:"email" yaml:"email"`
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	Affiliation  string `json:"affiliation" yaml:"affiliation"`
	Avatar       string `json:"avatar" yaml:"avatar"`
	Followers    int    `json:"followers" yaml:"followers"`
	Following    int    `json:"following" yaml:"following"`
	Publications int    `json:"publications" yaml:"publications"`
	HIndex       int    `json:"hIndex" yaml:"hIndex"`
	IsLoggedIn   bool   `json:"isLoggedIn" yaml:"isLoggedIn"`
}

// Post is a shared academic publication. Author and Affiliation are copied
// inline rather than joined from a User or Academic record.
type Post struct {
	ID          string   `json:"id" yaml:"id"`
	AuthorID    string   `json:"authorId" yaml:"authorId"`
	Author      string   `json:"author" yaml:"author"`
	Affiliation string   `json:"affiliation" yaml:"affiliation"`
	Title       string   `json:"title" yaml:"title"`
	Abstract    string   `json:"abstract" yaml:"abstract"`
	Type        PostType `json:"type" yaml:"type"`
	Venue       string   `json:"venue" yaml:"venue"`
	Date        string   `json:"date" yaml:"date"`
	Likes       int      `json:"likes" yaml:"likes"`
	Comments    int      `json:"comments" yaml:"comments"`
	PDFURL      string   `json:"pdfUrl" yaml:"pdfUrl"`
	Image       string   `json:"image" yaml:"image"`
	IsLiked     bool     `json:"isLiked" yaml:"isLiked"`
	IsShared    bool     `json:"isShared" yaml:"isShared"`
}

// NewPost carries the caller-supplied fields of a post being published.
type NewPost struct {
	Author      string
	Affiliation string
	Title       string
	Abstract    string
	Type        PostType
	Venue       string
	Date        string
	PDFURL      string
	Image       string
}

type Academic struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	Affiliation  string `json:"affiliation" yaml:"affiliation"`
	Department   string `json:"department" yaml:"department"`
	Publications int    `json:"publications" yaml:"publications"`
	Citations    int    `json:"citations" yaml:"citations"`
	HIndex       int    `json:"hIndex" yaml:"hIndex"`
	Avatar       string `json:"avatar" yaml:"avatar"`
	IsFollowing  bool   `json:"isFollowing" yaml:"isFollowing"`
}

type Comment struct {
	ID       string `json:"id" yaml:"id"`
	PostID   string `json:"postId" yaml:"postId"`
	UserID   string `json:"userId" yaml:"userId"`
	UserName string `json:"userName" yaml:"userName"`
	Content  string `json:"content" yaml:"content"`
	Date     string `json:"date" yaml:"date"`
}
