package catalog

import "github.com/iliyamo/concert-watch-rooms/internal/model"

// seedInfo is the demo line-up.  Entries are kept in the same
// "Key: value" form the concert cards are authored in.
var seedInfo = []struct {
	id   string
	info string
}{
	{"1", "Artist: Nicki Minaj\nDate: March 19th 2021\nTime: 12:00 PM PST\nPrice: Free \nGenre: Rap \nDescription: Join Nicki Minaj on her Queen Album Comeback Tour featuring certified hits and fan favorites"},
	{"2", "Artist: Wizkid\nDate: March 19th 2021\nTime: 2:00 PM PST\nPrice: Free \nGenre: Afropop \nDescription: Join Wizkid on his Made in Lagos Album Comeback Tour featuring certified hits and fan favorites"},
	{"3", "Artist: Taylor Swift\nDate: March 19th 2021\nTime: 4:30 PM PST\nPrice: Free \nGenre: Alternative \nDescription: Join Taylor Swift on her Folklore + Evermore Album Comeback Tours featuring certified hits and fan favorites"},
	{"4", "Artist: Owl City\nDate: March 19th 2021\nTime: 7:00 PM PST\nPrice: Free \nGenre: Pop \nDescription: Join Owl City on his Cinematic Album Comeback Tour featuring certified hits and fan favorites"},
	{"5", "Artist: Burna Boy\nDate: March 20th 2021\nTime: 7:00 AM PST\nPrice: Free \nGenre: Afrobeats \nDescription: Join Burna Boy on his Twice As Tall Album Comeback Tour featuring certified hits and fan favorites"},
	{"6", "Artist: Harry Styles\nDate: March 20th 2021\nTime: 10:00 AM PST\nPrice: Free \nGenre: Pop \nDescription: Join Harry Styles on his Fine Line Album Comeback Tour featuring certified hits and fan favorites"},
	{"7", "Artist: SZA\nDate: March 20th 2021\nTime: 10:00 AM PST\nPrice: Free \nGenre: R&B \nDescription: Join SZA on her Ctrl Album Comeback Tour featuring certified hits and fan favorites"},
	{"8", "Artist: Rihanna\nDate: March 20th 2021\nTime: 5:00 PM PST\nPrice: Free \nGenre: Pop \nDescription: Join Rihanna on her Anti Album Comeback Tour featuring certified hits and fan favorites"},
	{"9", "Artist: Nicki Minaj\nDate: March 21st 2021\nTime: 9:00 AM PST\nPrice: Free \nGenre: Afrobeats \nDescription: Join Nicki Minaj on her Run Up live performance featuring certified hit remixes and acoustic performances"},
	{"10", "Artist: Conan Gray\nDate: March 21st 2021\nTime: 2:00 PM PST\nPrice: Free \nGenre: Pop \nDescription: Join Conan Gray on his Crush Culture Song Release Tour featuring certified hit remixes and acoustic performances"},
	{"11", "Artist: Frank Ocean\nDate: March 21st 2021\nTime: 4:00 PM PST\nPrice: Free \nGenre: Neo Soul \nDescription: Join Frank Ocean on his Blonde Album Comeback Tour featuring certified hits and fan favorites"},
	{"12", "Artist: Sam Smith\nDate: March 21st 2021\nTime: 9:00 PM PST\nPrice: Free \nGenre: Pop \nDescription: Join Sam Smith on their Love Goes Album Comeback Tour featuring certified hits and fan favorites"},
	{"13", "Artist: Ariana Grande\nDate: March 22nd 2021\nTime: 11:00 AM PST\nPrice: Free \nGenre: Pop \nDescription: Join Ariana Grande on her Positions Album Comeback Tour featuring certified hits and fan favorites"},
	{"14", "Artist: Normani\nDate: March 22nd 2021\nTime: 1:00 PM PST\nPrice: Free \nGenre: R&B \nDescription: Join Normani on her Motivation Song Release Tour featuring certified hit remixes and acoustic performances"},
	{"15", "Artist: WizKid\nDate: March 22nd 2021\nTime: 4:00 PM PST\nPrice: Free \nGenre: Afrobeats \nDescription: Join WizKid on his Jam Release Tour featuring certified hit remixes and acoustic performances"},
}

// SeedEvents parses the demo line-up into concert events.
func SeedEvents() []model.ConcertEvent {
	out := make([]model.ConcertEvent, 0, len(seedInfo))
	for _, s := range seedInfo {
		out = append(out, ParseInfo(s.id, s.info))
	}
	return out
}

// Default returns a catalog loaded with the demo line-up.
func Default() *Catalog {
	c, err := New(SeedEvents())
	if err != nil {
		// seed ids are static and unique
		panic(err)
	}
	return c
}
