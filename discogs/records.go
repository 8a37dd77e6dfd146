package discogs

import "time"

type Release struct {
	ID                uint64           `json:"id"`
	Title             string           `json:"title"`
	Status            string           `json:"status"`
	Year              int              `json:"year"`
	Country           string           `json:"country"`
	Released          string           `json:"released"`
	ReleasedFormatted string           `json:"released_formatted"`
	Notes             string           `json:"notes"`
	DataQuality       string           `json:"data_quality"`
	DateAdded         time.Time        `json:"date_added"`
	DateChanged       time.Time        `json:"date_changed"`
	EstimatedWeight   *int             `json:"estimated_weight"`
	FormatQuantity    int              `json:"format_quantity"`
	LowestPrice       *float64         `json:"lowest_price"`
	NumForSale        int              `json:"num_for_sale"`
	MasterID          uint64           `json:"master_id"`
	MasterURL         string           `json:"master_url"`
	ResourceURL       string           `json:"resource_url"`
	URI               string           `json:"uri"`
	Thumb             string           `json:"thumb"`
	Artists           []Artist         `json:"artists"`
	ArtistsSort       string           `json:"artists_sort"`
	ExtraArtists      []Artist         `json:"extraartists"`
	Community         ReleaseCommunity `json:"community"`
	Companies         []Label          `json:"companies"`
	Labels            []Label          `json:"labels"`
	Formats           []Format         `json:"formats"`
	Genres            []string         `json:"genres"`
	Styles            []string         `json:"styles"`
	Identifiers       []Identifier     `json:"identifiers"`
	Images            []Image          `json:"images"`
	Tracklist         []Track          `json:"tracklist"`
	Videos            []Video          `json:"videos"`
}

type MasterRelease struct {
	ID                   uint64   `json:"id"`
	Title                string   `json:"title"`
	Year                 int      `json:"year"`
	DataQuality          string   `json:"data_quality"`
	LowestPrice          *float64 `json:"lowest_price"`
	NumForSale           int      `json:"num_for_sale"`
	MainRelease          uint64   `json:"main_release"`
	MainReleaseURL       string   `json:"main_release_url"`
	MostRecentRelease    uint64   `json:"most_recent_release"`
	MostRecentReleaseURL string   `json:"most_recent_release_url"`
	ResourceURL          string   `json:"resource_url"`
	URI                  string   `json:"uri"`
	VersionsURL          string   `json:"versions_url"`
	Artists              []Artist `json:"artists"`
	Genres               []string `json:"genres"`
	Styles               []string `json:"styles"`
	Images               []Image  `json:"images"`
	Tracklist            []Track  `json:"tracklist"`
	Videos               []Video  `json:"videos"`
}

type Artist struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	ANV         string `json:"anv"`
	Join        string `json:"join"`
	Role        string `json:"role"`
	Tracks      string `json:"tracks"`
	ResourceURL string `json:"resource_url"`
}

type Label struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	CatNo          string `json:"catno"`
	EntityType     string `json:"entity_type"`
	EntityTypeName string `json:"entity_type_name"`
	ResourceURL    string `json:"resource_url"`
}

type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Descriptions []string `json:"descriptions"`
}

type Identifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Image: URI e URI150 vêm vazios sem token.
type Image struct {
	Type        string `json:"type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	URI         string `json:"uri"`
	URI150      string `json:"uri150"`
	ResourceURL string `json:"resource_url"`
}

// Track.Duration é texto livre ("4:01", "" etc.).
type Track struct {
	Position string `json:"position"`
	Type     string `json:"type_"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

type Video struct {
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Embed       bool   `json:"embed"`
}

type User struct {
	Username    string `json:"username"`
	ResourceURL string `json:"resource_url"`
}

type ReleaseRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type ReleaseCommunity struct {
	Contributors []User        `json:"contributors"`
	DataQuality  string        `json:"data_quality"`
	Have         int           `json:"have"`
	Want         int           `json:"want"`
	Rating       ReleaseRating `json:"rating"`
	Status       string        `json:"status"`
	Submitter    User          `json:"submitter"`
}
