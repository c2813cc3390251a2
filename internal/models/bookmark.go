package models

// Bookmark represents one saved social-media post with its metadata and
// extracted links. It is supplied by the export file and never mutated.
type Bookmark struct {
	ID       string   `json:"id"`
	Author   string   `json:"author"`
	Text     string   `json:"text"`
	Date     string   `json:"date"`
	TweetURL string   `json:"tweetUrl"`
	Links    []Link   `json:"links,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	// Optional conversation context, used only to enrich the prompt.
	ReplyContext *PostContext `json:"replyContext,omitempty"`
	QuoteContext *PostContext `json:"quoteContext,omitempty"`
}

// Link is an expanded URL found in the bookmark, optionally with metadata
// resolved at export time.
type Link struct {
	Expanded string       `json:"expanded"`
	Content  *LinkContent `json:"content,omitempty"`
}

// LinkContent holds whatever the exporter knew about the linked resource.
type LinkContent struct {
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// PostContext is a quoted or replied-to post.
type PostContext struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// PrimaryLink returns the first extracted link, or nil if there are none.
func (b *Bookmark) PrimaryLink() *Link {
	if len(b.Links) == 0 {
		return nil
	}
	return &b.Links[0]
}
