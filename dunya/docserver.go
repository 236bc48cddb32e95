package dunya

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SourceFile fetches a derived or source document for a record from the
// document server, e.g. slug "mp3" for the audio or "pitch" for extracted
// features. subtype narrows multi-part documents and may be empty.
func (c *Client) SourceFile(ctx context.Context, mbid, slug, subtype string) ([]byte, error) {
	p := fmt.Sprintf("document/by-id/%s/%s", url.PathEscape(mbid), url.PathEscape(slug))
	var args url.Values
	if subtype != "" {
		args = url.Values{"subtype": {subtype}}
	}
	return c.get(ctx, c.apiURL(p, args), false)
}

// MP3 fetches the audio of a recording.
func (c *Client) MP3(ctx context.Context, mbid string) ([]byte, error) {
	return c.SourceFile(ctx, mbid, "mp3", "")
}

// DownloadMP3 downloads the audio of a recording into dir, named
// "Artists - Title.mp3" from the recording's concert artists. It returns
// the file name written.
func (c *Client) DownloadMP3(ctx context.Context, mbid, dir string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("dunya: download dir: %w", err)
	}

	rec, err := c.Recording(ctx, mbid)
	if err != nil {
		return "", err
	}
	if len(rec.Concert) == 0 {
		return "", fmt.Errorf("dunya: recording %s has no concert", mbid)
	}
	con, err := c.Concert(ctx, rec.Concert[0].MBID)
	if err != nil {
		return "", err
	}

	contents, err := c.MP3(ctx, mbid)
	if err != nil {
		return "", err
	}

	name := sanitizeName(fmt.Sprintf("%s - %s.mp3", artistNames(con.ConcertArtists), rec.Title))
	if err := os.WriteFile(filepath.Join(dir, name), contents, 0o644); err != nil {
		return "", fmt.Errorf("dunya: write %s: %w", name, err)
	}
	return name, nil
}

// DownloadConcert downloads the audio of every recording in a concert into
// a per-concert directory under dir, named "disc - track - artists -
// title.mp3". It returns the concert directory created.
func (c *Client) DownloadConcert(ctx context.Context, mbid, dir string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("dunya: download dir: %w", err)
	}

	con, err := c.Concert(ctx, mbid)
	if err != nil {
		return "", err
	}
	artists := artistNames(con.ConcertArtists)

	concertDir := sanitizeName(fmt.Sprintf("%s - %s", artists, con.Title))
	if err := os.MkdirAll(filepath.Join(dir, concertDir), 0o755); err != nil {
		return "", fmt.Errorf("dunya: create concert dir: %w", err)
	}

	for _, rec := range con.Recordings {
		contents, err := c.MP3(ctx, rec.MBID)
		if err != nil {
			return "", err
		}
		name := sanitizeName(fmt.Sprintf("%d - %d - %s - %s.mp3",
			rec.Disc, rec.Disctrack, artists, rec.Title))
		if err := os.WriteFile(filepath.Join(dir, concertDir, name), contents, 0o644); err != nil {
			return "", fmt.Errorf("dunya: write %s: %w", name, err)
		}
	}
	return concertDir, nil
}

// artistNames joins artist names as they appear in file names.
func artistNames(artists []Ref) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, " and ")
}

// sanitizeName makes a record title safe as a file name component.
func sanitizeName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}
