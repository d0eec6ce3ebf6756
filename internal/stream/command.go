package stream

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/util"
)

const (
	// placeholders substituted in CommandProvider.Args
	TorrentArg = "{torrent}"
	IndexArg   = "{index}"
)

// CommandProvider plays torrents through an external program such as
// webtorrent-cli. The torrent is written to a temporary file for the
// duration of the call.
type CommandProvider struct {
	Command string
	Args    []string
	TempDir string // empty uses the system temp dir
	Logger  *log.Logger
}

// NewWebTorrentProvider streams into mpv through webtorrent-cli
func NewWebTorrentProvider(logger *log.Logger) *CommandProvider {
	return &CommandProvider{
		Command: "webtorrent",
		Args:    []string{"download", TorrentArg, "--select", IndexArg, "--mpv", "--quiet"},
		Logger:  logger,
	}
}

func (c *CommandProvider) Play(ctx context.Context, t Torrent, fileIndex int) error {
	logger := c.Logger
	if logger == nil {
		logger = util.Discard()
	}
	if _, err := exec.LookPath(c.Command); err != nil {
		return errors.Errorf("%s not found in PATH", c.Command)
	}

	f, err := os.CreateTemp(c.TempDir, "mediapoisk-*.torrent")
	if err != nil {
		return errors.Wrap(err, "creating temp torrent")
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil {
			logger.Warn("removing temp torrent", "path", f.Name(), "error", err)
		}
	}()
	if _, err := f.Write(t.Data); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "writing temp torrent")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing temp torrent")
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		a = strings.ReplaceAll(a, TorrentArg, f.Name())
		args[i] = strings.ReplaceAll(a, IndexArg, strconv.Itoa(fileIndex))
	}
	logger.Debug("starting player", "command", c.Command, "args", args, "torrent", t.Name)

	cmd := exec.CommandContext(ctx, c.Command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s failed (stderr: %s)", c.Command, strings.TrimSpace(stderr.String()))
	}
	return nil
}
