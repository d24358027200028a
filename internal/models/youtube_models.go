package models

// Comment is one top-level comment pulled from a video's comment threads.
type Comment struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Text        string `json:"comment"`
	PublishedAt string `json:"date"`
	Likes       int    `json:"likes"`
}

type CommentThreadsResponse struct {
	NextPageToken string              `json:"nextPageToken"`
	Items         []CommentThreadItem `json:"items"`
}

type CommentThreadItem struct {
	ID      string               `json:"id"`
	Snippet CommentThreadSnippet `json:"snippet"`
}

type CommentThreadSnippet struct {
	TopLevelComment *TopLevelComment `json:"topLevelComment"`
}

type TopLevelComment struct {
	Snippet *CommentSnippet `json:"snippet"`
}

type CommentSnippet struct {
	AuthorDisplayName string `json:"authorDisplayName"`
	TextDisplay       string `json:"textDisplay"`
	PublishedAt       string `json:"publishedAt"`
	LikeCount         int    `json:"likeCount"`
}

type YouTubeErrorResponse struct {
	Error YouTubeError `json:"error"`
}

type YouTubeError struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Errors  []YouTubeErrorItem `json:"errors"`
}

type YouTubeErrorItem struct {
	Reason string `json:"reason"`
}
