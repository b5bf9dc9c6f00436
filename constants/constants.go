package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetBucketName() string {
	name := os.Getenv("PUBLISH_BUCKET")
	if name != "" {
		return name
	}

	panic("PUBLISH_BUCKET environment variable is not set!")
}

const MidiFilename = "saharenau.mid"
const MusicXMLFilename = "saharenau.musicxml"
