// Package source defines the domain models and interfaces for media catalog resolution.
package source

import (
	"fmt"

	"github.com/samber/mo"
)

// StreamVariant describes one encoded video rendition of a network item.
// It covers both muxed (video+audio) and video-only variants.
// Absent numeric fields stay zero and sort after populated ones.
type StreamVariant struct {
	// MimeType of the container (e.g. "video/mp4").
	MimeType string `json:"mimeType"`
	// Direct URL to the encoded stream.
	URL string `json:"url"`
	// Width in pixels.
	Width int `json:"width"`
	// Height in pixels.
	Height int `json:"height"`
	// FPS is the frame rate.
	FPS int `json:"fps"`
	// Bitrate in bits per second.
	Bitrate int `json:"bitrate"`
	// HasAudio marks muxed variants; video-only variants need a
	// separately selected audio track.
	HasAudio bool `json:"hasAudio"`
}

// AudioTrack describes one separately-muxed audio rendition.
type AudioTrack struct {
	// MimeType of the container (e.g. "audio/mp4").
	MimeType string `json:"mimeType"`
	// Direct URL to the audio stream.
	URL string `json:"url"`
	// Bitrate in bits per second.
	Bitrate int `json:"bitrate"`
	// Language tag (e.g. "en", "en-US").
	Language string `json:"language"`
}

// ResolvedStream is the final selection result for a network item: either
// one combined URL, or a video URL paired with an audio URL.
type ResolvedStream struct {
	// URL of the muxed stream; empty when video and audio are separate.
	URL string `json:"url,omitempty"`
	// VideoURL of the video-only stream, paired with AudioURL.
	VideoURL string `json:"videoUrl,omitempty"`
	// AudioURL of the separately chosen audio track.
	AudioURL string `json:"audioUrl,omitempty"`
	// Quality label (e.g. "1080p", "720p60").
	Quality string `json:"quality"`
	// Resolution as "WxH".
	Resolution string `json:"resolution"`
	// FPS is the frame rate of the selected variant.
	FPS int `json:"fps"`
	// AudioLanguage of the chosen track, present only when audio was
	// separately selected.
	AudioLanguage mo.Option[string] `json:"audioLanguage"`
}

// Combined reports whether the selection is a single muxed stream.
func (r *ResolvedStream) Combined() bool {
	return r.URL != ""
}

// String returns the quality label, or the resolution when no label is set.
func (r *ResolvedStream) String() string {
	if r.Quality != "" {
		return r.Quality
	}
	return r.Resolution
}

// ResolutionString formats pixel dimensions as "WxH".
func ResolutionString(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
