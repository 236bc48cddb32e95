package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mtg/dunya-go/dunya"
	"github.com/mtg/dunya-go/internal/wav"
	"github.com/mtg/dunya-go/pitch"
)

func newClient(cfg config) (*dunya.Client, error) {
	opts := []dunya.Option{dunya.WithCollections(cfg.Collections...)}
	if cfg.APIURL != "" {
		opts = append(opts, dunya.WithBaseURL(cfg.APIURL))
	}
	return dunya.New(cfg.Token, opts...)
}

func cmdList(ctx context.Context, cfg config, kind string) int {
	client, err := newClient(cfg)
	if err != nil {
		fail("%v (set DUNYA_TOKEN or the token config field)", err)
		return 1
	}

	var rows [][2]string
	switch kind {
	case "recordings":
		recs, err := client.Recordings(ctx, false)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, r := range recs {
			rows = append(rows, [2]string{r.MBID, r.Title})
		}
	case "artists":
		artists, err := client.Artists(ctx)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, a := range artists {
			rows = append(rows, [2]string{a.MBID, a.Name})
		}
	case "concerts":
		concerts, err := client.Concerts(ctx)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, c := range concerts {
			rows = append(rows, [2]string{c.MBID, c.Title})
		}
	case "works":
		works, err := client.Works(ctx)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, w := range works {
			rows = append(rows, [2]string{w.MBID, w.Title})
		}
	case "raagas":
		raagas, err := client.Raagas(ctx)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, r := range raagas {
			rows = append(rows, [2]string{r.UUID, r.Name})
		}
	case "taalas":
		taalas, err := client.Taalas(ctx)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, t := range taalas {
			rows = append(rows, [2]string{t.UUID, t.Name})
		}
	case "instruments":
		instruments, err := client.Instruments(ctx)
		if err != nil {
			fail("%v", err)
			return 1
		}
		for _, in := range instruments {
			rows = append(rows, [2]string{fmt.Sprint(in.ID), in.Name})
		}
	default:
		fail("unknown kind %q", kind)
		return 1
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	tw.Flush()
	return 0
}

func cmdGet(ctx context.Context, cfg config, kind, id string) int {
	client, err := newClient(cfg)
	if err != nil {
		fail("%v (set DUNYA_TOKEN or the token config field)", err)
		return 1
	}

	var record any
	switch kind {
	case "recording":
		record, err = client.Recording(ctx, id)
	case "artist":
		record, err = client.Artist(ctx, id)
	case "concert":
		record, err = client.Concert(ctx, id)
	case "work":
		record, err = client.Work(ctx, id)
	case "raaga":
		record, err = client.Raaga(ctx, id)
	case "taala":
		record, err = client.Taala(ctx, id)
	default:
		fail("unknown kind %q", kind)
		return 1
	}
	if err != nil {
		fail("%v", err)
		return 1
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fail("%v", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func cmdDownload(ctx context.Context, cfg config, mbid, dir string, concert bool) int {
	client, err := newClient(cfg)
	if err != nil {
		fail("%v (set DUNYA_TOKEN or the token config field)", err)
		return 1
	}

	if concert {
		logger().Info("downloading concert", "mbid", mbid, "dir", dir)
		name, err := client.DownloadConcert(ctx, mbid, dir)
		if err != nil {
			fail("%v", err)
			return 1
		}
		success("saved concert to %s", name)
		return 0
	}

	logger().Info("downloading recording", "mbid", mbid, "dir", dir)
	name, err := client.DownloadMP3(ctx, mbid, dir)
	if err != nil {
		fail("%v", err)
		return 1
	}
	success("saved %s", name)
	return 0
}

func cmdPitch(cfg config, inFile, outFile string) int {
	f, err := os.Open(inFile)
	if err != nil {
		fail("%v", err)
		return 1
	}
	defer f.Close()

	sig, err := wav.Decode(f)
	if err != nil {
		fail("%v", err)
		return 1
	}

	extractor := pitch.New(cfg.pitchOptions(sig.SampleRate)...)
	logger().Info("extracting melody",
		"file", inFile,
		"samples", len(sig.Samples),
		"sample_rate", sig.SampleRate,
	)

	melody, err := extractor.Extract(sig.Samples)
	if err != nil {
		fail("%v", err)
		return 1
	}

	if outFile == "" {
		outFile = inFile + ".pitch.txt"
	}
	if err := writeMelody(outFile, melody); err != nil {
		fail("%v", err)
		return 1
	}
	success("wrote %d pitch samples to %s", len(melody.PitchHz), outFile)
	return 0
}

// writeMelody writes the time/pitch/salience triple as tab-separated rows.
func writeMelody(path string, m pitch.Melody) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for i := range m.Times {
		fmt.Fprintf(w, "%.6f\t%.6f\t%.6f\n", m.Times[i], m.PitchHz[i], m.Salience[i])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
