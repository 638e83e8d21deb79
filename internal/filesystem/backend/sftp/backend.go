package sftp

import (
	"context"
	"log/slog"
	"net"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"github.com/spf13/afero/sftpfs"
	"golang.org/x/crypto/ssh"
)

type Backend struct {
	addr   string
	config *ssh.ClientConfig
}

// Mount implements filesystem.Backend.
func (b *Backend) Mount(ctx context.Context, fn filesystem.MountFunc) error {
	sshClient, err := ssh.Dial("tcp", b.addr, b.config)
	if err != nil {
		return errors.Wrapf(err, "could not dial '%s'", b.addr)
	}

	defer func() {
		if err := sshClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.ErrorContext(ctx, "could not close ssh connection", slog.Any("error", errors.WithStack(err)))
		}
	}()

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := sftpClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.ErrorContext(ctx, "could not close sftp session", slog.Any("error", errors.WithStack(err)))
		}
	}()

	if err := fn(ctx, sftpfs.New(sftpClient)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(addr string, config *ssh.ClientConfig) *Backend {
	return &Backend{
		addr:   addr,
		config: config,
	}
}

var _ filesystem.Backend = &Backend{}
