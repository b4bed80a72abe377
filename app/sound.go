package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// prepSoundStream decodes the audio file at the specified path and
// initialises the speaker with its sample rate.
func prepSoundStream(pathToFile string) (beep.StreamSeekCloser, error) {
	f, err := os.Open(pathToFile)
	if err != nil {
		return nil, err
	}

	var stream beep.StreamSeekCloser

	var format beep.Format

	ext := filepath.Ext(pathToFile)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat.Fmt(ext)
	}

	if err != nil {
		return nil, err
	}

	err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	if err != nil {
		return nil, err
	}

	err = stream.Seek(0)
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// playSound plays the audio file once and blocks until it completes.
func playSound(pathToFile string) error {
	stream, err := prepSoundStream(pathToFile)
	if err != nil {
		return err
	}

	defer func() {
		_ = stream.Close()
	}()

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()

	return nil
}
