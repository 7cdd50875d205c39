package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// Center is the default map center, 花蓮市.
var Center = [2]float64{23.9739, 121.6014}

// Place is a hard-coded fallback for when the upstream finds nothing.
type Place struct {
	Name  string
	Lat   float64
	Lng   float64
	Type  string
	Class string
}

func (p Place) Candidate() Candidate {
	return Candidate{DisplayName: p.Name, Lat: p.Lat, Lng: p.Lng, Type: p.Type, Class: p.Class}
}

var KnownPlaces = []Place{
	{Name: "花蓮火車站", Lat: 23.9931, Lng: 121.6014, Type: "station", Class: "railway"},
	{Name: "花蓮市公所", Lat: 23.9739, Lng: 121.6014, Type: "government", Class: "office"},
	{Name: "花蓮醫院", Lat: 23.9739, Lng: 121.6014, Type: "hospital", Class: "healthcare"},
	{Name: "花蓮高中", Lat: 23.9739, Lng: 121.6014, Type: "school", Class: "education"},
	{Name: "花蓮港", Lat: 23.9739, Lng: 121.6014, Type: "port", Class: "transport"},
}

// KnownAddresses is the last resort of Resolve.
var KnownAddresses = []Place{
	{Name: "花蓮火車站", Lat: 23.9931, Lng: 121.6014, Type: "station", Class: "railway"},
	{Name: "花蓮市公所", Lat: 23.9739, Lng: 121.6014, Type: "government", Class: "office"},
	{Name: "花蓮醫院", Lat: 23.9739, Lng: 121.6014, Type: "hospital", Class: "healthcare"},
	{Name: "花蓮港", Lat: 23.9739, Lng: 121.6014, Type: "port", Class: "transport"},
}

// Suggestions is shown when an address cannot be resolved at all.
var Suggestions = []string{"花蓮火車站", "花蓮市公所", "花蓮醫院", "花蓮港", "花蓮高中", "花蓮大學"}

var (
	excludedNames = []string{"china", "中國", "大陆", "beijing", "shanghai"}
	acceptedNames = []string{"台灣", "taiwan", "花蓮", "hualien", "taipei", "kaohsiung"}
)

// NoMatchError carries the suggestions to show the user.
type NoMatchError struct {
	Address     string
	Suggestions []string
}

func (e *NoMatchError) Error() string {
	return "no location found for " + e.Address
}

var ErrNoMatch = errors.New("no location found")

func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// Locator layers the region heuristics on top of a Searcher.
type Locator struct {
	Client      Searcher
	Region      string // 花蓮縣
	RegionShort string // 花蓮
	Country     string // 台灣
	Known       []Place
	Addresses   []Place
}

func NewLocator(client Searcher) *Locator {
	return &Locator{
		Client:      client,
		Region:      "花蓮縣",
		RegionShort: "花蓮",
		Country:     "台灣",
		Known:       KnownPlaces,
		Addresses:   KnownAddresses,
	}
}

// SearchPlaces looks inside the region first and widens to the whole
// country when that yields fewer than two hits. Hits outside the country
// are dropped; when none survive, matching known places are returned.
func (l *Locator) SearchPlaces(ctx context.Context, text string) []Candidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Candidate{}
	}

	hits, err := l.Client.Search(ctx, Query{Text: text + " " + l.Region, Limit: 3})
	if err != nil {
		log.Warnf("geocode: region search for %q failed: %v", text, err)
	}
	if err == nil && len(hits) < 2 {
		hits, err = l.Client.Search(ctx, Query{Text: text + " " + l.Country, Limit: 5})
		if err != nil {
			log.Warnf("geocode: country search for %q failed: %v", text, err)
		}
	}
	if err != nil {
		return []Candidate{}
	}

	kept := []Candidate{}
	for _, c := range hits {
		if inCountry(c.DisplayName) {
			kept = append(kept, c)
		}
	}
	if len(kept) > 0 {
		return kept
	}
	return l.knownMatching(text)
}

func inCountry(displayName string) bool {
	name := strings.ToLower(displayName)
	for _, bad := range excludedNames {
		if strings.Contains(name, bad) {
			return false
		}
	}
	for _, good := range acceptedNames {
		if strings.Contains(name, good) {
			return true
		}
	}
	return false
}

func (l *Locator) knownMatching(text string) []Candidate {
	q := strings.ToLower(text)
	out := []Candidate{}
	for _, p := range l.Known {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p.Candidate())
		}
	}
	return out
}

// Strategies lists the progressively broader queries Resolve tries.
func (l *Locator) Strategies(address string) []string {
	simplified := strings.TrimSpace(strings.Replace(strings.Replace(address, l.Region, "", 1), "花蓮市", "", 1))
	return []string{
		address,
		address + " " + l.Country,
		address + " " + l.RegionShort,
		simplified + " " + l.Region,
	}
}

// Resolve finds the single best position for an address. Each strategy
// asks for one hit and the first hit wins; a failing strategy is skipped.
// Known addresses are tried last. Otherwise the error is a *NoMatchError.
func (l *Locator) Resolve(ctx context.Context, address string) (Candidate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Candidate{}, &NoMatchError{Address: address, Suggestions: Suggestions}
	}

	for _, q := range l.Strategies(address) {
		hits, err := l.Client.Search(ctx, Query{Text: q, Limit: 1})
		if err != nil {
			log.Warnf("geocode: strategy %q failed: %v", q, err)
			continue
		}
		if len(hits) > 0 {
			return hits[0], nil
		}
	}

	head, _, _ := strings.Cut(address, "縣")
	for _, p := range l.Addresses {
		if strings.Contains(address, p.Name) || (head != "" && strings.Contains(p.Name, head)) {
			return p.Candidate(), nil
		}
	}
	return Candidate{}, &NoMatchError{Address: address, Suggestions: Suggestions}
}
