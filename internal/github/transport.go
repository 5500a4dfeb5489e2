package github

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

// newHTTPClient creates the HTTP client used for API requests.
// With a proxy address, all connections are dialed through that SOCKS5 proxy;
// otherwise the default transport (which honours HTTPS_PROXY) is cloned.
func newHTTPClient(proxyAddress string, timeout time.Duration) (*http.Client, error) {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{Timeout: timeout}, nil
	}
	transport := base.Clone()

	if proxyAddress != "" {
		// Nil auth: local SOCKS proxies such as Tor accept unauthenticated clients.
		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		transport.Proxy = nil
		transport.DialContext = dialContextFunc(dialer)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// dialContextFunc adapts a proxy.Dialer to the DialContext signature.
// Dialers that implement proxy.ContextDialer are used directly; the SOCKS5
// dialer returned by proxy.SOCKS5 does.
func dialContextFunc(dialer proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		type dialResult struct {
			conn net.Conn
			err  error
		}
		resultCh := make(chan dialResult, 1)
		go func() {
			conn, err := dialer.Dial(network, addr)
			resultCh <- dialResult{conn, err}
		}()

		select {
		case result := <-resultCh:
			return result.conn, result.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
