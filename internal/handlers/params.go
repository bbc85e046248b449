package handlers

import (
	"time"
)

// PollParams holds the form parameters offered on the poll creation page.
// They are computed once at startup and shared by reference; the year range
// runs from the current calendar year down to 1900.
type PollParams struct {
	Genres []string
	Years  []int

	genreSet map[string]struct{}
}

func NewPollParams() *PollParams {
	years := make([]int, 0, time.Now().Year()-1899)
	for year := time.Now().Year(); year >= 1900; year-- {
		years = append(years, year)
	}

	genreSet := make(map[string]struct{}, len(pollGenres))
	for _, genre := range pollGenres {
		genreSet[genre] = struct{}{}
	}

	return &PollParams{
		Genres:   pollGenres,
		Years:    years,
		genreSet: genreSet,
	}
}

// HasGenre reports whether genre is one of the offered genres.
func (p *PollParams) HasGenre(genre string) bool {
	_, ok := p.genreSet[genre]
	return ok
}

// The styles the catalog search knows about.
var pollGenres = []string{
	"AOR", "Abstract", "Acid", "Acoustic", "African", "Alternative Rock",
	"Ambient", "Arena Rock", "Art Rock", "Audiobook", "Avant-garde", "Jazz Avantgarde",
	"Ballad", "Baroque", "Beat", "Big Band", "Black Metal", "Bluegrass",
	"Blues Rock", "Bolero", "Bollywood", "Boom Bap", "Bop", "Bossa Nova",
	"Bossanova", "Breakbeat", "Breakcore", "Breaks", "Celtic", "Cha-Cha",
	"Chanson", "Choral", "Classic Rock", "Classical", "Comedy", "Conscious",
	"Contemporary", "Contemporary Jazz", "Contemporary R&B", "Cool Jazz", "Country", "Country Rock",
	"Cumbia", "Dance-pop", "Dancehall", "Dark Ambient", "Darkwave", "Death Metal",
	"Deep House", "Disco", "Dixieland", "Doo Wop", "Doom Metal", "Downtempo",
	"Drone", "Drum n Bass", "Dub", "Dubstep", "EBM", "Easy Listening",
	"Electric Blues", "Electro", "Electro House", "Emo", "Euro House", "Eurodance",
	"Europop", "Experimental", "Field Recording", "Flamenco", "Folk", "Folk Rock",
	"Free Improvisation", "Free Jazz", "Funk", "Fusion", "Future Jazz", "Gangsta",
	"Garage House", "Garage Rock", "Glam", "Glitch", "Gospel", "Goth Rock",
	"Grindcore", "Grunge", "Happy Hardcore", "Hard Bop", "Hard House", "Hard Rock",
	"Hard Trance", "Hardcore", "Hardcore Hip-Hop", "Hardstyle", "Harsh Noise Wall", "Heavy Metal",
	"Hi NRG", "Hindustani", "Hip Hop", "House", "IDM", "Indie Pop",
	"Indie Rock", "Industrial", "Instrumental", "Italo-Disco", "Italodance", "J-pop",
	"Jazz-Funk", "Jazz-Rock", "Jungle", "Krautrock", "Latin", "Latin Jazz",
	"Laïkó", "Leftfield", "Lo-Fi", "MPB", "Merengue", "Metalcore",
	"Minimal", "Mod", "Modern", "Modern Classical", "Musical", "Musique Concrète",
	"Neo-Classical", "New Age", "New Wave", "Noise", "Novelty", "Nu Metal",
	"Oi", "Opera", "Parody", "Poetry", "Polka", "Pop Punk",
	"Pop Rap", "Pop Rock", "Post Bop", "Post Rock", "Post-Punk", "Power Metal",
	"Power Pop", "Prog Rock", "Progressive House", "Progressive Metal", "Progressive Trance", "Psy-Trance",
	"Psychedelic Rock", "Punk", "Radioplay", "Reggae", "Reggae-Pop", "Religious",
	"Renaissance", "Rhythm & Blues", "RnB/Swing", "Rock & Roll", "Rockabilly", "Romantic",
	"Roots Reggae", "Rumba", "Salsa", "Samba", "Schlager", "Score",
	"Shoegaze", "Ska", "Sludge Metal", "Smooth Jazz", "Soft Rock", "Soul",
	"Soul-Jazz", "Soundtrack", "Southern Rock", "Space Rock", "Speed Metal", "Spoken Word",
	"Stoner Rock", "Story", "Surf", "Swing", "Symphonic Rock", "Synth-pop",
	"Synthwave", "Tango", "Tech House", "Techno", "Theme", "Thrash",
	"Thug Rap", "Trance", "Trap", "Tribal", "Trip Hop", "UK Garage",
	"Vaporwave", "Vocal", "Volksmusik",
}
