package resources

import (
	"embed"
)

//go:embed sound/chime.wav
var soundFS embed.FS

// Chime returns the bundled transition cue.
func Chime() []byte {
	data, err := soundFS.ReadFile("sound/chime.wav")
	if err != nil {
		// The asset is compiled in; a read failure is a build defect.
		panic(err)
	}
	return data
}
