// Package player plays the alert sound. It is only used by unattended runs
// launched by the Task Scheduler and by the interactive "play" command.
package player

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/spf13/afero"
	"github.com/warpdl/daily420/pkg/logger"
)

var (
	// ErrAssetNotFound is returned when the sound file does not exist.
	ErrAssetNotFound = errors.New("audio file not found")

	// ErrUnsupportedFormat is returned for files that are neither mp3 nor wav.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Output is the audio device. speaker implements it in production.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (speakerOutput) Close() {
	speaker.Close()
}

// ProgressFunc is called from the audio goroutine with the number of
// samples played so far and the total number of samples.
type ProgressFunc func(played, total int)

// Config holds the dependencies of a Player.
type Config struct {
	// Fs is where sound files are read from. Defaults to the OS filesystem.
	Fs afero.Fs

	// Output defaults to the system speaker.
	Output Output

	// Volume is applied in base-2 steps; 0 keeps the original level.
	Volume float64

	// Logger receives playback failures. Defaults to a NopLogger.
	Logger logger.Logger
}

// Player decodes and plays sound files synchronously.
type Player struct {
	fs     afero.Fs
	out    Output
	volume float64
	log    logger.Logger
}

// New creates a Player from cfg.
func New(cfg Config) *Player {
	p := &Player{
		fs:     cfg.Fs,
		out:    cfg.Output,
		volume: cfg.Volume,
		log:    cfg.Logger,
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.out == nil {
		p.out = speakerOutput{}
	}
	if p.log == nil {
		p.log = logger.NewNopLogger()
	}
	return p
}

// Play plays path and blocks until it finishes. Failures are logged and
// never returned: nobody is watching when the scheduler runs the alert.
func (p *Player) Play(ctx context.Context, path string) {
	if err := p.PlayFile(ctx, path, nil); err != nil {
		p.log.Error("cannot play %s: %v", path, err)
		return
	}
	p.log.Info("played %s", path)
}

// PlayFile plays path and blocks until it finishes or ctx is done.
// progress may be nil.
func (p *Player) PlayFile(ctx context.Context, path string, progress ProgressFunc) error {
	f, err := p.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %q", ErrAssetNotFound, path)
		}
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	stream, format, err := decode(path, f)
	if err != nil {
		f.Close()
		return err
	}
	defer stream.Close()

	if err := p.out.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio output failed to initialize: %w", err)
	}
	defer p.out.Close()

	var s beep.Streamer = stream
	if p.volume != 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	}
	if progress != nil {
		s = &progressStreamer{Streamer: s, total: stream.Len(), fn: progress}
	}

	done := make(chan struct{})
	p.out.Play(beep.Seq(s, beep.Callback(func() { close(done) })))

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

func decode(path string, f afero.File) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return stream, format, nil
}

// progressStreamer reports how many samples have passed through it.
type progressStreamer struct {
	beep.Streamer
	played int
	total  int
	fn     ProgressFunc
}

func (p *progressStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := p.Streamer.Stream(samples)
	p.played += n
	p.fn(p.played, p.total)
	return n, ok
}

// ResolveAsset returns the sound file to play: override when set,
// otherwise the first dir containing name. When nothing exists the
// candidate in the first dir is returned so the failure names a path.
func ResolveAsset(fsys afero.Fs, override, name string, dirs ...string) string {
	if override != "" {
		return override
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fsys, candidate); ok {
			return candidate
		}
	}
	for _, dir := range dirs {
		if dir != "" {
			return filepath.Join(dir, name)
		}
	}
	return name
}
