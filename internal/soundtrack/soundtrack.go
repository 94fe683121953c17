// Package soundtrack plays an optional audio file under the field.
package soundtrack

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(r)
		}, nil
	case ".mp3":
		return mp3.Decode, nil
	case ".flac":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(r)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

var speakerOnce struct {
	sync.Mutex
	rate beep.SampleRate
}

type Soundtrack struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

// Open decodes the header of the file at path. Nothing is played until Play.
func Open(path string) (*Soundtrack, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &Soundtrack{
		file:     f,
		streamer: streamer,
		format:   format,
	}, nil
}

func (s *Soundtrack) Duration() time.Duration {
	return s.format.SampleRate.D(s.streamer.Len())
}

// Play starts playback. With loop the track restarts forever.
func (s *Soundtrack) Play(loop bool) error {
	if err := initSpeaker(s.format.SampleRate); err != nil {
		return err
	}

	var src beep.Streamer = s.streamer
	if loop {
		src = beep.Loop(-1, s.streamer)
	}
	s.ctrl = &beep.Ctrl{Streamer: src}

	speaker.Play(s.ctrl)
	return nil
}

func initSpeaker(rate beep.SampleRate) error {
	speakerOnce.Lock()
	defer speakerOnce.Unlock()

	if speakerOnce.rate == rate {
		return nil
	}

	bufferSize := rate.N(time.Second / 20)
	if speakerOnce.rate != 0 {
		speaker.Clear()
	}
	if err := speaker.Init(rate, bufferSize); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speakerOnce.rate = rate
	return nil
}

// Close stops playback and releases the file.
func (s *Soundtrack) Close() error {
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = true
		s.ctrl.Streamer = nil
		speaker.Unlock()
		s.ctrl = nil
	}

	err := s.streamer.Close()
	// the decoders close the file themselves
	if ferr := s.file.Close(); ferr != nil && !errors.Is(ferr, os.ErrClosed) {
		err = errors.Join(err, ferr)
	}
	return err
}
