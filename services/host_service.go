package services

import (
	"context"
	"fmt"
	"net"
	"os"

	"github/itish2003/pdfchat/models"
)

// HostService reports the network identity of the running process.
type HostService interface {
	ServerInfo(ctx context.Context) (*models.ServerInfo, error)
}

type hostServiceImpl struct {
	port     int
	hostname func() (string, error)
	lookupIP func(ctx context.Context, host string) ([]net.IPAddr, error)
}

// NewHostService resolves identity from the OS hostname and the default
// resolver. port is reported as configured; it is not probed.
func NewHostService(port int) HostService {
	return &hostServiceImpl{
		port:     port,
		hostname: os.Hostname,
		lookupIP: net.DefaultResolver.LookupIPAddr,
	}
}

// ServerInfo resolves the hostname and its first IPv4 address.
func (h *hostServiceImpl) ServerInfo(ctx context.Context) (*models.ServerInfo, error) {
	hostname, err := h.hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	addrs, err := h.lookupIP(ctx, hostname)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s: %w", hostname, err)
	}

	var ip string
	for _, addr := range addrs {
		if v4 := addr.IP.To4(); v4 != nil {
			ip = v4.String()
			break
		}
	}
	if ip == "" {
		return nil, fmt.Errorf("no IPv4 address found for %s", hostname)
	}

	return &models.ServerInfo{
		Hostname:  hostname,
		IPAddress: ip,
		Port:      h.port,
	}, nil
}
