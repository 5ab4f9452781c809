// Package youtube provides a client for the YouTube Data API v3 using
// API-key authentication. It covers the three query operations the scanner
// needs: keyword search, video details and channel details.
package youtube

import "encoding/json"

// SearchItem is one candidate from the search endpoint.
type SearchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelID    string `json:"channelId"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
	} `json:"snippet"`
}

// VideoID is a video identifier from the videos endpoint. It is usually a
// bare string, but some responses nest it as an object, so decoding accepts
// both and prefers an inner videoId field over an inner id field.
type VideoID string

func (v *VideoID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = VideoID(s)
		return nil
	}
	var obj struct {
		VideoID string `json:"videoId"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.VideoID != "" {
		*v = VideoID(obj.VideoID)
	} else {
		*v = VideoID(obj.ID)
	}
	return nil
}

// Thumbnail is a single thumbnail variant.
type Thumbnail struct {
	URL string `json:"url"`
}

// Thumbnails holds the thumbnail variants a snippet may carry.
type Thumbnails struct {
	Default *Thumbnail `json:"default"`
	Medium  *Thumbnail `json:"medium"`
	High    *Thumbnail `json:"high"`
}

// BestURL returns the preferred thumbnail URL: medium, then high, then
// default. Returns nil when no variant is present.
func (t Thumbnails) BestURL() *string {
	for _, th := range []*Thumbnail{t.Medium, t.High, t.Default} {
		if th != nil && th.URL != "" {
			url := th.URL
			return &url
		}
	}
	return nil
}

// DefaultURL returns the default-variant URL, or nil.
func (t Thumbnails) DefaultURL() *string {
	if t.Default != nil && t.Default.URL != "" {
		url := t.Default.URL
		return &url
	}
	return nil
}

// VideoItem is one record from the videos endpoint. Statistics counts are
// decimal strings on the wire; callers parse them with a zero default.
type VideoItem struct {
	ID      VideoID `json:"id"`
	Snippet struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		Tags         []string   `json:"tags"`
		PublishedAt  string     `json:"publishedAt"`
		ChannelID    string     `json:"channelId"`
		ChannelTitle string     `json:"channelTitle"`
		Thumbnails   Thumbnails `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

// ChannelItem is one record from the channels endpoint.
type ChannelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string     `json:"title"`
		PublishedAt string     `json:"publishedAt"`
		Country     string     `json:"country"`
		Thumbnails  Thumbnails `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
	} `json:"statistics"`
}
