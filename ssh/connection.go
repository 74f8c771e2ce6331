package ssh

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
)

const dialTimeout = 30 * time.Second

type Logger interface {
	Debug(tag, msg string, args ...interface{})
}

// ConnectionCreator dials host, appending port 22 when host has no port,
// and authenticates with privateKey.
func ConnectionCreator(ctx context.Context, host, user, privateKey string, hostKeyCallback ssh.HostKeyCallback, logger Logger) (*ssh.Client, error) {
	parsedPrivateKey, err := ssh.ParsePrivateKey([]byte(privateKey))
	if err != nil {
		return nil, errors.Wrap(err, "ssh.NewConnection.ParsePrivateKey failed")
	}

	address := withDefaultPort(host)
	sshConfig := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(parsedPrivateKey),
		},
		HostKeyCallback: hostKeyCallback,
		Timeout:         dialTimeout,
	}

	logger.Debug("dbb", "Connecting to %s as %s", address, user)
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "ssh.Dial failed for %s", address)
	}

	clientConn, channels, requests, err := handshake(ctx, conn, address, sshConfig)
	if err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "ssh handshake with %s failed", address)
	}

	return ssh.NewClient(clientConn, channels, requests), nil
}

// handshake closes conn when ctx ends before the handshake completes.
func handshake(ctx context.Context, conn net.Conn, address string, sshConfig *ssh.ClientConfig) (ssh.Conn, <-chan ssh.NewChannel, <-chan *ssh.Request, error) {
	finished := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			conn.Close()
		case <-finished:
		}
	}()

	clientConn, channels, requests, err := ssh.NewClientConn(conn, address, sshConfig)
	close(finished)
	<-watcherDone

	if ctxErr := ctx.Err(); ctxErr != nil {
		if err == nil {
			clientConn.Close()
		}
		return nil, nil, nil, ctxErr
	}
	if err != nil {
		return nil, nil, nil, err
	}

	return clientConn, channels, requests, nil
}

func withDefaultPort(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, "22")
}
