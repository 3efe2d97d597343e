// Package stream selects the best playable encoded variant for a network-hosted item.
//
// Selection walks a tiered fallback policy: muxed variants in the
// preferred container first, then a preferred-container video paired with
// a separately chosen audio track, then the same two tiers over any
// container. Manifest-style adaptive references are excluded from every
// tier except the final audio fallback.
package stream

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kinotree/kinotree/key"
	"github.com/kinotree/kinotree/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

var (
	// ErrNoSuitableStream indicates no non-manifest variant exists at all.
	ErrNoSuitableStream = errors.New("no suitable stream found")
	// ErrNoAudioTracks indicates an audio track was required but none were supplied.
	ErrNoAudioTracks = errors.New("no audio tracks available")
)

// IsManifest reports whether the reference points at an adaptive-streaming
// playlist rather than a direct progressive stream.
func IsManifest(url, mimeType string) bool {
	u := strings.ToLower(url)
	m := strings.ToLower(mimeType)
	return strings.Contains(u, ".m3u8") ||
		strings.Contains(u, ".mpd") ||
		strings.Contains(m, "mpegurl") ||
		strings.Contains(m, "dash+xml")
}

// preferredContainer returns the configured container token (e.g. "mp4").
func preferredContainer() string {
	container := viper.GetString(key.StreamPreferredContainer)
	if container == "" {
		container = "mp4"
	}
	return strings.ToLower(container)
}

// preferredLanguageList falls back to the configured preference order.
func preferredLanguageList(preferred []string) []string {
	if len(preferred) > 0 {
		return preferred
	}
	return viper.GetStringSlice(key.StreamPreferredLanguages)
}

// SelectBest picks one playable reference from the supplied descriptors.
// When no explicit language preference is given, the configured order applies.
func SelectBest(variants []*source.StreamVariant, tracks []*source.AudioTrack, preferredLanguages ...string) (*source.ResolvedStream, error) {
	container := preferredContainer()

	// Tier 1: muxed, preferred container.
	if best := bestVariant(variants, func(v *source.StreamVariant) bool {
		return v.HasAudio && inContainer(v.MimeType, container) && !IsManifest(v.URL, v.MimeType)
	}); best != nil {
		return combined(best), nil
	}

	// Tier 2: video-only, preferred container, paired with an audio track.
	if best := bestVariant(variants, func(v *source.StreamVariant) bool {
		return !v.HasAudio && inContainer(v.MimeType, container) && !IsManifest(v.URL, v.MimeType)
	}); best != nil {
		return paired(best, tracks, preferredLanguageList(preferredLanguages))
	}

	// Tier 3: repeat both tiers over any container.
	if best := bestVariant(variants, func(v *source.StreamVariant) bool {
		return v.HasAudio && !IsManifest(v.URL, v.MimeType)
	}); best != nil {
		return combined(best), nil
	}

	if best := bestVariant(variants, func(v *source.StreamVariant) bool {
		return !v.HasAudio && !IsManifest(v.URL, v.MimeType)
	}); best != nil {
		return paired(best, tracks, preferredLanguageList(preferredLanguages))
	}

	return nil, ErrNoSuitableStream
}

// SelectURL is the thin variant of SelectBest returning only the playable
// reference strings. audioURL is empty when the selection is muxed.
func SelectURL(variants []*source.StreamVariant, tracks []*source.AudioTrack, preferredLanguages ...string) (videoURL, audioURL string, err error) {
	resolved, err := SelectBest(variants, tracks, preferredLanguages...)
	if err != nil {
		return "", "", err
	}
	if resolved.Combined() {
		return resolved.URL, "", nil
	}
	return resolved.VideoURL, resolved.AudioURL, nil
}

// SelectAudio applies the audio sub-policy: preferred languages in order,
// then best preferred-container track, then best non-manifest track of any
// container, then the highest bitrate overall.
func SelectAudio(tracks []*source.AudioTrack, preferredLanguages ...string) (*source.AudioTrack, error) {
	if len(tracks) == 0 {
		return nil, ErrNoAudioTracks
	}

	container := preferredContainer()

	for _, lang := range preferredLanguageList(preferredLanguages) {
		if best := bestTrack(tracks, func(t *source.AudioTrack) bool {
			return strings.EqualFold(t.Language, lang) &&
				inContainer(t.MimeType, container) &&
				!IsManifest(t.URL, t.MimeType)
		}); best != nil {
			return best, nil
		}
	}

	if best := bestTrack(tracks, func(t *source.AudioTrack) bool {
		return inContainer(t.MimeType, container) && !IsManifest(t.URL, t.MimeType)
	}); best != nil {
		return best, nil
	}

	if best := bestTrack(tracks, func(t *source.AudioTrack) bool {
		return !IsManifest(t.URL, t.MimeType)
	}); best != nil {
		return best, nil
	}

	// Last resort: the highest bitrate track, manifest or not.
	return lo.MaxBy(tracks, func(a, b *source.AudioTrack) bool {
		return a.Bitrate > b.Bitrate
	}), nil
}

// inContainer reports whether the mime descriptor names the container token.
func inContainer(mimeType, container string) bool {
	return strings.Contains(strings.ToLower(mimeType), container)
}

// bestVariant filters variants by pred and returns the winner sorted by
// height, then frame rate, both descending. Absent dimensions are zero and
// therefore lose every comparison.
func bestVariant(variants []*source.StreamVariant, pred func(*source.StreamVariant) bool) *source.StreamVariant {
	candidates := lo.Filter(variants, func(v *source.StreamVariant, _ int) bool { return pred(v) })
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Height != candidates[j].Height {
			return candidates[i].Height > candidates[j].Height
		}
		return candidates[i].FPS > candidates[j].FPS
	})

	return candidates[0]
}

// bestTrack filters tracks by pred and returns the highest bitrate match.
func bestTrack(tracks []*source.AudioTrack, pred func(*source.AudioTrack) bool) *source.AudioTrack {
	candidates := lo.Filter(tracks, func(t *source.AudioTrack, _ int) bool { return pred(t) })
	if len(candidates) == 0 {
		return nil
	}

	return lo.MaxBy(candidates, func(a, b *source.AudioTrack) bool {
		return a.Bitrate > b.Bitrate
	})
}

// combined builds the resolution result for a muxed variant.
func combined(v *source.StreamVariant) *source.ResolvedStream {
	return &source.ResolvedStream{
		URL:           v.URL,
		Quality:       QualityLabel(v.Height, v.FPS),
		Resolution:    source.ResolutionString(v.Width, v.Height),
		FPS:           v.FPS,
		AudioLanguage: mo.None[string](),
	}
}

// paired builds the resolution result for a video-only variant plus the
// audio track chosen by the sub-policy.
func paired(v *source.StreamVariant, tracks []*source.AudioTrack, languages []string) (*source.ResolvedStream, error) {
	track, err := SelectAudio(tracks, languages...)
	if err != nil {
		return nil, err
	}

	language := mo.None[string]()
	if track.Language != "" {
		language = mo.Some(track.Language)
	}

	return &source.ResolvedStream{
		VideoURL:      v.URL,
		AudioURL:      track.URL,
		Quality:       QualityLabel(v.Height, v.FPS),
		Resolution:    source.ResolutionString(v.Width, v.Height),
		FPS:           v.FPS,
		AudioLanguage: language,
	}, nil
}

// QualityLabel renders a human-facing label like "1080p" or "720p60".
func QualityLabel(height, fps int) string {
	if height <= 0 {
		return ""
	}
	if fps > 30 {
		return fmt.Sprintf("%dp%d", height, fps)
	}
	return fmt.Sprintf("%dp", height)
}
