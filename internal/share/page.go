package share

import (
	"strings"
	"text/template"
)

// playerPageTemplate is the static player page. It is a text template,
// not an html one: the title is interpolated verbatim, matching the
// page format the hosted repository already serves.
var playerPageTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            margin: 0;
            padding: 0;
            background: #000;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            color: #fff;
        }
        .video-container {
            width: 100%;
            max-width: 1920px;
            margin: 20px auto;
            padding: 0 20px;
        }
        video {
            width: 100%;
            max-height: 85vh;
        }
    </style>
</head>
<body>
    <div class="video-container">
        <video controls preload="metadata">
            <source src="../videos/{{.VideoName}}" type="video/mp4">
        </video>
    </div>
</body>
</html>
`))

type playerPageData struct {
	Title     string
	VideoName string
}

// RenderPlayerPage returns the HTML player document for a video stored
// under videos/. videoName must already be sanitized; the page refers
// to it through the relative path ../videos/<videoName>. The source
// type is always video/mp4 regardless of the actual container format.
func RenderPlayerPage(videoName, title string) string {
	var b strings.Builder
	// Execute cannot fail: static template, strings.Builder writer.
	_ = playerPageTemplate.Execute(&b, playerPageData{Title: title, VideoName: videoName})
	return b.String()
}
