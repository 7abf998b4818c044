package domain

type VideoID string

// Comment is a single entry in a video's comment list.
type Comment struct {
	ID       string `json:"id,omitempty"`
	UserID   UserID `json:"userId"`
	Username string `json:"username,omitempty"`
	Comment  string `json:"comment"`
}

// Video is the backend-owned feed entity. The client never mutates it
// directly; rating and comment requests go to the backend and the local
// copy is replaced with whatever comes back.
type Video struct {
	ID           VideoID   `json:"id"`
	Title        string    `json:"title"`
	Caption      string    `json:"caption"`
	Location     string    `json:"location"`
	People       []string  `json:"people"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedBy    User      `json:"createdBy"`
	Ratings      []int     `json:"ratings"`
	Comments     []Comment `json:"comments"`
}

// AverageRating returns the mean of all ratings; ok is false when the video
// has none.
func (v *Video) AverageRating() (float64, bool) {
	if len(v.Ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range v.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(v.Ratings)), true
}
