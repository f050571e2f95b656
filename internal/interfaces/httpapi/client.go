package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

const unknownCountry = "ZZ"

// Edge headers are checked in order; the first parseable value wins.
var (
	clientIPHeaders = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	countryHeaders  = []string{"Fly-Client-Country", "CF-IPCountry", "X-Vercel-IP-Country", "CloudFront-Viewer-Country"}
)

// ClientResolver identifies the caller for access logs and rate limiting.
// Forwarding headers can be forged by any client, so they are only read when
// the service runs behind a proxy that overwrites them.
type ClientResolver struct {
	TrustProxyHeaders bool
}

// IP returns the caller address, or an empty string when nothing parses.
func (c ClientResolver) IP(r *http.Request) string {
	if c.TrustProxyHeaders {
		for _, header := range clientIPHeaders {
			if addr, ok := parseClientAddr(r.Header.Get(header)); ok {
				return addr.String()
			}
		}
	}
	if addr, ok := parseClientAddr(r.RemoteAddr); ok {
		return addr.String()
	}
	return ""
}

// Country returns an ISO 3166 alpha-2 code from the edge, or ZZ.
func (c ClientResolver) Country(r *http.Request) string {
	if !c.TrustProxyHeaders {
		return unknownCountry
	}
	for _, header := range countryHeaders {
		if code, ok := parseCountry(r.Header.Get(header)); ok {
			return code
		}
	}
	return unknownCountry
}

// parseClientAddr accepts a bare address, host:port, or the first entry of
// a comma-separated forwarding chain.
func parseClientAddr(raw string) (netip.Addr, bool) {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return netip.Addr{}, false
	}
	if addrPort, err := netip.ParseAddrPort(value); err == nil {
		return addrPort.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(strings.Trim(value, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func parseCountry(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || code == "XX" || code == "T1" {
		return "", false
	}
	for _, ch := range code {
		if ch < 'A' || ch > 'Z' {
			return "", false
		}
	}
	return code, true
}
