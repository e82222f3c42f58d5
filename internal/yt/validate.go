package yt

import "regexp"

var ytRegex = regexp.MustCompile(`(?i)^https?://((www|m)\.)?(youtube\.com/(watch\?v=|shorts/)|youtu\.be/)`)

func IsYouTubeURL(s string) bool {
	return ytRegex.MatchString(s)
}
