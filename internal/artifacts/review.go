package artifacts

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"scriptcast/internal/render"
	"scriptcast/internal/rendercache"
	"scriptcast/internal/textutil"
	"scriptcast/internal/timeline"
)

// reviewTemplate renders a self-contained page for pre-publish listening and
// proofreading. Audio references are relative so the page works from the
// output directory without a server.
var reviewTemplate = template.Must(template.New("review").Funcs(template.FuncMap{
	"offset": textutil.FormatChapterOffset,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} — review</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
.segment { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
.meta { color: #555; font-size: 0.85rem; margin-bottom: 0.5rem; }
.cached { color: #2a7; }
audio { width: 100%; margin-top: 0.5rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Voice: {{.Voice}} · Language: {{.Language}}{{if .HasDurations}} · Runtime: {{offset .TotalDuration}}{{end}}</p>
{{range .Segments}}<div class="segment">
<h2>{{.Index}}. {{.Title}}</h2>
<p class="meta">{{if .HasTiming}}{{offset .Start}} – {{offset .End}} · {{end}}{{.Source}}{{if .Cached}} · <span class="cached">cached</span>{{end}}</p>
<p>{{.Text}}</p>
<audio controls src="{{.AudioRef}}"></audio>
</div>
{{end}}</body>
</html>
`))

type reviewSegment struct {
	Index     int
	Title     string
	Text      string
	Source    string
	AudioRef  string
	Cached    bool
	HasTiming bool
	Start     float64
	End       float64
}

type reviewData struct {
	Title         string
	Voice         string
	Language      string
	HasDurations  bool
	TotalDuration float64
	Segments      []reviewSegment
}

// WriteReviewPage renders the HTML review page under outputDir.
func WriteReviewPage(outputDir string, m Manifest, results []render.Result, tl timeline.Timeline) (string, error) {
	data := reviewData{
		Title:         m.Inputs.Title,
		Voice:         m.Inputs.Voice,
		Language:      m.Inputs.Language,
		HasDurations:  tl.HasDurations,
		TotalDuration: tl.TotalDuration,
	}
	for i, res := range results {
		seg := reviewSegment{
			Index:    res.Segment.Index,
			Title:    res.Segment.Title,
			Text:     res.Segment.Text,
			Source:   string(res.Segment.Source),
			AudioRef: rendercache.SegmentsDirName + "/" + res.FileName,
			Cached:   res.Cached,
		}
		if tl.HasDurations && i < len(tl.Entries) {
			seg.HasTiming = true
			seg.Start = tl.Entries[i].Start
			seg.End = tl.Entries[i].End
		}
		data.Segments = append(data.Segments, seg)
	}

	path := filepath.Join(outputDir, ReviewFileName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("artifacts: create review page: %w", err)
	}
	defer file.Close()
	if err := reviewTemplate.Execute(file, data); err != nil {
		return "", fmt.Errorf("artifacts: render review page: %w", err)
	}
	return path, nil
}
