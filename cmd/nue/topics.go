package nue

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicsFS embed.FS

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
