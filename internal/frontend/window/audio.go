package window

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
)

type cuePlayer struct {
	logger  *slog.Logger
	players map[sound.Cue]*audio.Player
}

// newCuePlayer - prepares one player per cue, from a WAV file when one is
// configured and from synthesized tones otherwise.
func newCuePlayer(logger *slog.Logger, opts Options) *cuePlayer {
	cues := &cuePlayer{
		logger:  logger,
		players: make(map[sound.Cue]*audio.Player),
	}

	if opts.Mute {
		return cues
	}

	ctx := audio.NewContext(sound.SampleRate)

	for cue, path := range map[sound.Cue]string{sound.CueMove: opts.MoveSound, sound.CueEnd: opts.EndSound} {
		pcm := sound.Synthesize(cue, sound.SampleRate)

		if path != "" {
			decoded, err := decodeWAV(path)
			if err != nil {
				logger.Warn("using synthesized sound", "cue", cue, "path", path, "error", err)
			} else {
				pcm = decoded
			}
		}

		cues.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}

	return cues
}

func decodeWAV(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sound: %w", err)
	}
	defer file.Close()

	stream, err := wav.DecodeWithSampleRate(sound.SampleRate, file)
	if err != nil {
		return nil, fmt.Errorf("could not decode wav: %w", err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("could not read wav: %w", err)
	}

	return pcm, nil
}

func (that *cuePlayer) Play(cue sound.Cue) {
	player, ok := that.players[cue]
	if !ok {
		return
	}

	if err := player.Rewind(); err != nil {
		that.logger.Warn("could not rewind sound", "cue", cue, "error", err)
		return
	}

	player.Play()
}
