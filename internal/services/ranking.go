package services

import (
	"sort"
	"strings"
)

// Catalog titles come as "<artist> - <album>".
const titleSeparator = " - "

// ArtistOf returns the artist part of a catalog release title.
func ArtistOf(title string) string {
	return strings.SplitN(title, titleSeparator, 2)[0]
}

// AlbumOf returns the album part of a catalog release title, or "" when the
// title carries no separator.
func AlbumOf(title string) string {
	parts := strings.SplitN(title, titleSeparator, 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// TopReleasesByArtist keeps at most one release per artist, preferring the
// higher popularity score, then returns the n most popular of the survivors
// ordered from least to most popular. Fewer than n survivors are returned
// as-is.
func TopReleasesByArtist(releases []Release, n int) []Release {
	kept := make([]Release, 0, len(releases))
	index := make(map[string]int)

	for _, release := range releases {
		artist := ArtistOf(release.Title)
		if i, ok := index[artist]; ok {
			if release.Popularity() > kept[i].Popularity() {
				kept[i] = release
			}
			continue
		}
		index[artist] = len(kept)
		kept = append(kept, release)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Popularity() < kept[j].Popularity()
	})

	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return kept
}
