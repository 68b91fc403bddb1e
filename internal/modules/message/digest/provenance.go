package digest

import (
	"net"
	"os"
	"path/filepath"
)

const unknownHost = "unknown"

// Provenance identifies where a digest was posted from.
type Provenance struct {
	Host   string
	Addr   string
	Script string
}

// DetectProvenance resolves the local hostname and its first IPv4 address.
// Lookup failures degrade to "unknown" rather than failing the run.
func DetectProvenance(script string) Provenance {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = unknownHost
	}
	if script == "" && len(os.Args) > 0 {
		script = filepath.Base(os.Args[0])
	}
	return Provenance{
		Host:   host,
		Addr:   lookupAddr(host),
		Script: script,
	}
}

func lookupAddr(host string) string {
	if host == unknownHost {
		return unknownHost
	}
	ips, err := net.LookupIP(host)
	if err != nil || len(ips) == 0 {
		return unknownHost
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ips[0].String()
}
