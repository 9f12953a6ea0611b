// Package youtube recognizes YouTube video URLs and retrieves caption
// transcripts through the public timedtext endpoint.
package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// videoIDPatterns match the standard, embed, and short URL shapes. A video
// identifier is always 11 characters drawn from [0-9A-Za-z_-].
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// videoHosts are the hostnames that serve watch pages.
var videoHosts = map[string]struct{}{
	"youtube.com":          {},
	"m.youtube.com":        {},
	"youtu.be":             {},
	"youtube-nocookie.com": {},
}

// IsVideoURL reports whether the URL points at a known video host.
func IsVideoURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	_, ok := videoHosts[host]
	return ok
}

// VideoID extracts the video identifier from a watch, embed, or short URL.
// The second return value is false when the URL is not a video URL or no
// identifier can be found.
func VideoID(rawURL string) (string, bool) {
	if !IsVideoURL(rawURL) {
		return "", false
	}
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}
