package media

import (
	"fmt"

	"github.com/floostack/transcoder/ffmpeg"
)

// ProbeVideo checks with ffprobe that path holds at least one video stream.
func ProbeVideo(ffmpegPath, ffprobePath, path string) error {
	metadata, err := ffmpeg.New(&ffmpeg.Config{
		FfmpegBinPath:  ffmpegPath,
		FfprobeBinPath: ffprobePath,
	}).Input(path).GetMetadata()
	if err != nil {
		return fmt.Errorf("failed to read %q with ffprobe: %w", path, err)
	}

	for _, s := range metadata.GetStreams() {
		if s.GetCodecType() == "video" {
			return nil
		}
	}
	return fmt.Errorf("%q has no video stream", path)
}
