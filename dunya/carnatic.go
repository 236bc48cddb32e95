package dunya

import (
	"context"
	"fmt"
	"net/url"
)

// Ref is a minimal reference to another record. Depending on the endpoint
// either Title or Name is filled.
type Ref struct {
	MBID  string `json:"mbid"`
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Performance links an artist to a recording or release, optionally with
// the played instrument.
type Performance struct {
	Artist     Ref        `json:"artist"`
	Instrument Instrument `json:"instrument"`
	Lead       bool       `json:"lead"`
}

// Recording is a single recorded performance.
type Recording struct {
	MBID      string        `json:"mbid"`
	Title     string        `json:"title"`
	Disc      int           `json:"disc,omitempty"`
	Disctrack int           `json:"disctrack,omitempty"`
	Artists   []Performance `json:"artists,omitempty"`
	Raaga     []Raaga       `json:"raaga,omitempty"`
	Taala     []Taala       `json:"taala,omitempty"`
	Work      []Ref         `json:"work,omitempty"`
	Concert   []Ref         `json:"concert,omitempty"`
}

// Artist is a performing artist.
type Artist struct {
	MBID        string       `json:"mbid"`
	Name        string       `json:"name"`
	Concerts    []Ref        `json:"concerts,omitempty"`
	Instruments []Instrument `json:"instruments,omitempty"`
	Recordings  []Ref        `json:"recordings,omitempty"`
}

// Concert is a release grouping several recordings.
type Concert struct {
	MBID           string      `json:"mbid"`
	Title          string      `json:"title"`
	Year           int         `json:"year,omitempty"`
	ConcertArtists []Ref       `json:"concert_artists,omitempty"`
	Recordings     []Recording `json:"recordings,omitempty"`
}

// Work is a composition.
type Work struct {
	MBID       string  `json:"mbid"`
	Title      string  `json:"title"`
	Composers  []Ref   `json:"composers,omitempty"`
	Raagas     []Raaga `json:"raagas,omitempty"`
	Taalas     []Taala `json:"taalas,omitempty"`
	Recordings []Ref   `json:"recordings,omitempty"`
}

// Raaga is a melodic framework.
type Raaga struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Artists   []Ref  `json:"artists,omitempty"`
	Works     []Ref  `json:"works,omitempty"`
	Composers []Ref  `json:"composers,omitempty"`
}

// Taala is a rhythmic cycle.
type Taala struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Artists   []Ref  `json:"artists,omitempty"`
	Works     []Ref  `json:"works,omitempty"`
	Composers []Ref  `json:"composers,omitempty"`
}

// Instrument is a musical instrument.
type Instrument struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Artists []Ref  `json:"artists,omitempty"`
}

// Recordings lists all recordings, paging through the API. With detail set
// each entry carries the full per-recording information, at the cost of a
// much slower query. Honors the configured collection restriction.
func (c *Client) Recordings(ctx context.Context, detail bool) ([]Recording, error) {
	var args url.Values
	if detail {
		args = url.Values{"detail": {"1"}}
	}
	return listAll[Recording](ctx, c, "api/carnatic/recording", true, args)
}

// Recording fetches one recording by MBID, including artists, raaga, taala
// and work relationships. Honors the configured collection restriction.
func (c *Client) Recording(ctx context.Context, mbid string) (Recording, error) {
	var rec Recording
	err := c.getJSON(ctx, "api/carnatic/recording/"+url.PathEscape(mbid), true, &rec)
	return rec, err
}

// Artists lists all artists. Honors the configured collection restriction.
func (c *Client) Artists(ctx context.Context) ([]Artist, error) {
	return listAll[Artist](ctx, c, "api/carnatic/artist", true, nil)
}

// Artist fetches one artist by MBID, including concert, instrument and
// recording relationships. Honors the configured collection restriction.
func (c *Client) Artist(ctx context.Context, mbid string) (Artist, error) {
	var a Artist
	err := c.getJSON(ctx, "api/carnatic/artist/"+url.PathEscape(mbid), true, &a)
	return a, err
}

// Concerts lists all concerts. Honors the configured collection restriction.
func (c *Client) Concerts(ctx context.Context) ([]Concert, error) {
	return listAll[Concert](ctx, c, "api/carnatic/concert", true, nil)
}

// Concert fetches one concert by MBID, including its artists and track
// listing. Honors the configured collection restriction.
func (c *Client) Concert(ctx context.Context, mbid string) (Concert, error) {
	var con Concert
	err := c.getJSON(ctx, "api/carnatic/concert/"+url.PathEscape(mbid), true, &con)
	return con, err
}

// Works lists all works.
func (c *Client) Works(ctx context.Context) ([]Work, error) {
	return listAll[Work](ctx, c, "api/carnatic/work", false, nil)
}

// Work fetches one work by MBID, including composers, raagas, taalas and
// recordings.
func (c *Client) Work(ctx context.Context, mbid string) (Work, error) {
	var w Work
	err := c.getJSON(ctx, "api/carnatic/work/"+url.PathEscape(mbid), false, &w)
	return w, err
}

// Raagas lists all raagas.
func (c *Client) Raagas(ctx context.Context) ([]Raaga, error) {
	return listAll[Raaga](ctx, c, "api/carnatic/raaga", false, nil)
}

// Raaga fetches one raaga by UUID.
func (c *Client) Raaga(ctx context.Context, uuid string) (Raaga, error) {
	var r Raaga
	err := c.getJSON(ctx, "api/carnatic/raaga/"+url.PathEscape(uuid), false, &r)
	return r, err
}

// Taalas lists all taalas.
func (c *Client) Taalas(ctx context.Context) ([]Taala, error) {
	return listAll[Taala](ctx, c, "api/carnatic/taala", false, nil)
}

// Taala fetches one taala by UUID.
func (c *Client) Taala(ctx context.Context, uuid string) (Taala, error) {
	var t Taala
	err := c.getJSON(ctx, "api/carnatic/taala/"+url.PathEscape(uuid), false, &t)
	return t, err
}

// Instruments lists all instruments.
func (c *Client) Instruments(ctx context.Context) ([]Instrument, error) {
	return listAll[Instrument](ctx, c, "api/carnatic/instrument", false, nil)
}

// Instrument fetches one instrument by numeric id.
func (c *Client) Instrument(ctx context.Context, id int) (Instrument, error) {
	var in Instrument
	err := c.getJSON(ctx, fmt.Sprintf("api/carnatic/instrument/%d", id), false, &in)
	return in, err
}
