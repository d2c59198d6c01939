// Command scriptcast turns a markdown script into narrated audio segments and
// the artifacts needed to publish them: chapters, captions, a build manifest,
// a plain-text description, and an HTML review page. With ffmpeg available it
// also stitches a master track and can mux it onto a video.
package main
